package dto

import "github.com/shopspring/decimal"

// SummaryStatsDTO respuesta de GET /api/dashboard/summary.
// Los contadores particionan el catálogo completo por status; TotalValue
// es Σ price·quantity sobre la colección sin filtrar.
type SummaryStatsDTO struct {
	Total      int             `json:"total"`
	InStock    int             `json:"in_stock"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
	TotalValue decimal.Decimal `json:"total_value"`

	// Distribución por categoría para el widget de torta (ordenada de mayor a menor).
	Categories []CategoryCountDTO `json:"categories"`

	// Metadatos del período, ej: "Agosto 2026"
	DateLabel string `json:"date_label"`
}

// CategoryCountDTO conteo de productos de una categoría.
type CategoryCountDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
