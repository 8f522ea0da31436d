package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status clasificación derivada del nivel de stock de un producto.
// Nunca se asigna directamente: siempre es función de Quantity
// (ver catalog.DeriveStatus).
type Status string

const (
	StatusInStock    Status = "in-stock"
	StatusLowStock   Status = "low-stock"
	StatusOutOfStock Status = "out-of-stock"
)

// Categorías y unidades fijas del catálogo de commodities.
var (
	ProductCategories = []string{"Grains", "Oils", "Canned", "Spices", "Other"}
	ProductUnits      = []string{"kg", "ton", "liter", "box", "bag"}
)

// ValidCategory indica si la categoría pertenece al conjunto fijo.
func ValidCategory(c string) bool {
	for _, v := range ProductCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidUnit indica si la unidad pertenece al conjunto fijo.
func ValidUnit(u string) bool {
	for _, v := range ProductUnits {
		if v == u {
			return true
		}
	}
	return false
}

// Product representa un commodity del inventario.
// Status y LastUpdated se recalculan en cada mutación; el resto de campos
// se editan vía el Catalog Store.
type Product struct {
	ID          string
	Name        string
	Category    string // uno de ProductCategories
	SKU         string
	Quantity    int             // entero no negativo
	Unit        string          // una de ProductUnits
	Price       decimal.Decimal // moneda con 2 decimales
	Supplier    string
	LastUpdated time.Time // fecha de la última mutación
	Status      Status    // derivado de Quantity
}
