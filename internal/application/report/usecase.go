package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/commodities-dashboard/internal/application/catalog"
	"github.com/jhoicas/commodities-dashboard/internal/application/dto"
)

// UseCase arma el reporte de inventario: resumen derivado + listado completo.
type UseCase struct {
	store     *catalog.Store
	generator InventoryPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(store *catalog.Store, generator InventoryPDFGenerator) *UseCase {
	return &UseCase{store: store, generator: generator}
}

// Generate produce el PDF del inventario completo (sin filtros de vista).
func (uc *UseCase) Generate(ctx context.Context) ([]byte, error) {
	stats := uc.store.SummaryStats()
	list, err := uc.store.Query(dto.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("reporte: consultar catálogo: %w", err)
	}
	pdf, err := uc.generator.GenerateInventoryPDF(ctx, stats, list.Items)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdf, nil
}
