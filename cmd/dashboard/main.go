package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/commodities-dashboard/internal/application/catalog"
	"github.com/jhoicas/commodities-dashboard/internal/application/report"
	"github.com/jhoicas/commodities-dashboard/internal/application/session"
	"github.com/jhoicas/commodities-dashboard/internal/infrastructure/localstore"
	"github.com/jhoicas/commodities-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/commodities-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/commodities-dashboard/internal/interfaces/http"
	"github.com/jhoicas/commodities-dashboard/pkg/config"
	"github.com/jhoicas/commodities-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Session Manager: restaura la sesión persistida antes de servir rutas.
	sessionStore := localstore.NewFileSessionStore(cfg.Session.StorePath)
	directory := memory.NewCredentialDirectory()
	sessionManager := session.NewManager(sessionStore, directory, cfg.Session.LoginDelay)

	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 5*time.Second)
	if err := sessionManager.Restore(restoreCtx); err != nil {
		log.Fatal().Err(err).Msg("restaurar sesión")
	}
	cancelRestore()
	if user := sessionManager.CurrentUser(); user != nil {
		log.Info().Str("email", user.Email).Str("role", user.Role).Msg("sesión restaurada")
	} else {
		log.Info().Msg("sin sesión persistida, arranque anónimo")
	}

	// Catalog Store con el seed de commodities.
	catalogStore := catalog.NewStore()
	if err := catalogStore.Initialize(memory.SeedProducts()); err != nil {
		log.Fatal().Err(err).Msg("inicializar catálogo")
	}

	reportUC := report.NewUseCase(catalogStore, infrapdf.NewMarotoReportGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Commodities Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionManager: sessionManager,
		CatalogStore:   catalogStore,
		ReportUC:       reportUC,
		JWT: httpRouter.JWTSettings{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
