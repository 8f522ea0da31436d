package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/commodities-dashboard/internal/application/catalog"
)

// DashboardHandler maneja el endpoint de resumen del dashboard (solo manager).
type DashboardHandler struct {
	store *catalog.Store
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(store *catalog.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GetSummary devuelve las estadísticas derivadas del catálogo completo.
// GET /api/dashboard/summary
//
// Respuesta: SummaryStatsDTO (total, in_stock, low_stock, out_of_stock,
// total_value, categories[], date_label). Los contadores y el valor total se
// calculan sobre la colección sin filtrar, independiente de la vista activa.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.store.SummaryStats())
}
