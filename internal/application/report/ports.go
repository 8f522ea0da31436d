// Package report genera el reporte PDF del estado del inventario.
package report

import (
	"context"

	"github.com/jhoicas/commodities-dashboard/internal/application/dto"
)

// InventoryPDFGenerator puerto de generación del PDF (lo implementa
// infrastructure/pdf; la interfaz evita acoplar el use case a Maroto).
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, stats *dto.SummaryStatsDTO, products []dto.ProductResponse) ([]byte, error)
}
