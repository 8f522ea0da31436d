// Package catalog contiene el Catalog Store: la colección de productos en
// memoria, sus mutaciones (alta y edición con derivación de status) y las
// consultas filtradas y de resumen que consume el dashboard.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/commodities-dashboard/internal/application/dto"
	"github.com/jhoicas/commodities-dashboard/internal/domain"
	domcatalog "github.com/jhoicas/commodities-dashboard/internal/domain/catalog"
	"github.com/jhoicas/commodities-dashboard/internal/domain/entity"
)

// Store mantiene la colección de productos. Las mutaciones se serializan con
// el lock de escritura; las lecturas son concurrentes entre sí. La validación
// ocurre antes de aplicar cualquier mutación, así una operación rechazada
// deja la colección byte a byte igual.
type Store struct {
	mu          sync.RWMutex
	initialized bool
	products    []entity.Product // orden: más recientes primero
	now         func() time.Time
}

// NewStore construye un Catalog Store vacío.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Initialize carga la colección inicial. Solo puede llamarse una vez; los
// status del seed se asumen consistentes con DeriveStatus (el seed propio se
// verifica en tests).
func (s *Store) Initialize(seed []entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return domain.ErrAlreadyInitialized
	}
	s.products = make([]entity.Product, len(seed))
	copy(s.products, seed)
	s.initialized = true
	return nil
}

// validateFields valida los campos de un producto ya mezclado, antes de
// aplicar cualquier mutación.
func validateFields(name, sku, supplier, category, unit string, quantity int, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(sku) == "" || strings.TrimSpace(supplier) == "" {
		return fmt.Errorf("%w: name, sku y supplier son requeridos", domain.ErrValidation)
	}
	if !entity.ValidCategory(category) {
		return fmt.Errorf("%w: categoría desconocida %q", domain.ErrValidation, category)
	}
	if !entity.ValidUnit(unit) {
		return fmt.Errorf("%w: unidad desconocida %q", domain.ErrValidation, unit)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrValidation)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	return nil
}

// Add valida los campos y antepone el nuevo producto a la colección
// (los recién agregados se muestran primero). El id lo genera el sistema
// y status se deriva de la cantidad.
func (s *Store) Add(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category := in.Category
	if category == "" {
		category = entity.ProductCategories[0]
	}
	unit := in.Unit
	if unit == "" {
		unit = entity.ProductUnits[0]
	}
	if err := validateFields(in.Name, in.SKU, in.Supplier, category, unit, in.Quantity, in.Price); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	product := entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    category,
		SKU:         in.SKU,
		Quantity:    in.Quantity,
		Unit:        unit,
		Price:       in.Price.Round(2),
		Supplier:    in.Supplier,
		LastUpdated: s.now(),
		Status:      domcatalog.DeriveStatus(in.Quantity),
	}
	s.products = append([]entity.Product{product}, s.products...)
	return toProductResponse(&product), nil
}

// Update mezcla los campos presentes sobre el registro existente, recalcula
// status y LastUpdated y lo reemplaza en su misma posición. La mezcla se
// valida completa antes de escribir: un Update rechazado no deja rastro.
func (s *Store) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	merged := s.products[idx]
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Category != nil {
		merged.Category = *in.Category
	}
	if in.SKU != nil {
		merged.SKU = *in.SKU
	}
	if in.Quantity != nil {
		merged.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		merged.Unit = *in.Unit
	}
	if in.Price != nil {
		merged.Price = in.Price.Round(2)
	}
	if in.Supplier != nil {
		merged.Supplier = *in.Supplier
	}
	if err := validateFields(merged.Name, merged.SKU, merged.Supplier, merged.Category, merged.Unit, merged.Quantity, merged.Price); err != nil {
		return nil, err
	}

	merged.Status = domcatalog.DeriveStatus(merged.Quantity)
	merged.LastUpdated = s.now()
	s.products[idx] = merged
	return toProductResponse(&merged), nil
}

// Get devuelve un producto por id.
func (s *Store) Get(id string) (*dto.ProductResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			return toProductResponse(&s.products[i]), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Query devuelve los productos que cumplen todos los filtros presentes.
// El texto busca como subcadena, sin distinguir mayúsculas, en name, sku o
// supplier (OR entre campos); category y status son igualdad exacta y el
// centinela "all" equivale a omitirlos. Lectura pura: no muta la colección.
func (s *Store) Query(filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	text := strings.ToLower(strings.TrimSpace(filter.Text))
	category := normalizeSentinel(filter.Category)
	status := normalizeSentinel(filter.Status)

	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]dto.ProductResponse, 0, len(s.products))
	for i := range s.products {
		p := &s.products[i]
		if text != "" && !matchesText(p, text) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if status != "" && string(p.Status) != status {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// SummaryStats particiona la colección completa por status y acumula el
// valor total del inventario (Σ price·quantity), ignorando cualquier filtro
// activo de la vista.
func (s *Store) SummaryStats() *dto.SummaryStatsDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &dto.SummaryStatsDTO{
		Total:      len(s.products),
		TotalValue: decimal.Zero,
		DateLabel:  monthLabel(s.now()),
	}
	byCategory := make(map[string]int)
	for i := range s.products {
		p := &s.products[i]
		switch p.Status {
		case entity.StatusInStock:
			out.InStock++
		case entity.StatusLowStock:
			out.LowStock++
		case entity.StatusOutOfStock:
			out.OutOfStock++
		}
		byCategory[p.Category]++
		out.TotalValue = out.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	out.TotalValue = out.TotalValue.Round(2)

	for name, count := range byCategory {
		out.Categories = append(out.Categories, dto.CategoryCountDTO{Name: name, Count: count})
	}
	sort.Slice(out.Categories, func(i, j int) bool {
		if out.Categories[i].Count != out.Categories[j].Count {
			return out.Categories[i].Count > out.Categories[j].Count
		}
		return out.Categories[i].Name < out.Categories[j].Name
	})
	return out
}

func normalizeSentinel(v string) string {
	if v == "all" {
		return ""
	}
	return v
}

func matchesText(p *entity.Product, text string) bool {
	return strings.Contains(strings.ToLower(p.Name), text) ||
		strings.Contains(strings.ToLower(p.SKU), text) ||
		strings.Contains(strings.ToLower(p.Supplier), text)
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		SKU:         p.SKU,
		Quantity:    p.Quantity,
		Unit:        p.Unit,
		Price:       p.Price,
		Supplier:    p.Supplier,
		LastUpdated: p.LastUpdated.Format("2006-01-02"),
		Status:      string(p.Status),
	}
}
