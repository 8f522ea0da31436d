package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/commodities-dashboard/internal/application/catalog"
	"github.com/jhoicas/commodities-dashboard/internal/application/report"
	"github.com/jhoicas/commodities-dashboard/internal/application/session"
	"github.com/jhoicas/commodities-dashboard/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionManager *session.Manager
	CatalogStore   *catalog.Store
	ReportUC       *report.UseCase
	JWT            JWTSettings
}

// Router registra las rutas de la API. El gating por rol replica la
// navegación del panel: Products para manager y storekeeper, Dashboard y
// reportes solo para manager.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SessionManager, deps.JWT)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	// Products (manager y storekeeper)
	products := protected.Group("/products", RequireRole(entity.RoleManager, entity.RoleStorekeeper))
	productHandler := NewProductHandler(deps.CatalogStore)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Dashboard (solo manager)
	dashboard := protected.Group("/dashboard", RequireRole(entity.RoleManager))
	dashboardHandler := NewDashboardHandler(deps.CatalogStore)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Reportes (solo manager)
	reports := protected.Group("/reports", RequireRole(entity.RoleManager))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.GetInventory)
}
