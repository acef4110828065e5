package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/findata/config"
	"github.com/guttosm/findata/internal/api"
	"github.com/guttosm/findata/internal/service"
	"github.com/guttosm/findata/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (FinancialRepository).
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes and the rate limit.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewFinancialRepository(db)
	svc := service.NewFinancialService(repo)
	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, cfg.Server.RateLimitPerMinute)

	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
