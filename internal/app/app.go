package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/putpricer/config"
	"github.com/guttosm/putpricer/internal/api"
	"github.com/guttosm/putpricer/internal/logger"
	"github.com/guttosm/putpricer/internal/pricing"
	"github.com/guttosm/putpricer/internal/service"
	"github.com/guttosm/putpricer/internal/storage"
)

// migrator is an indirection used by InitializeApp; overridden in tests.
var migrator = storage.Migrate

// NewEngine builds the pricing engine from configuration.
func NewEngine(cfg config.PricerConfig) *pricing.Engine {
	return pricing.NewEngine(
		pricing.WithWorkers(cfg.Workers),
		pricing.WithParallelThreshold(cfg.ParallelThreshold),
		pricing.WithChunkSize(cfg.ChunkSize),
	)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the pricing engine from config.AppConfig.Pricer.
//   - When history is enabled: connects to PostgreSQL, applies migrations,
//     and wires the runs repository.
//   - Creates the service and HTTP handler layers and the Gin router.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	engine := NewEngine(cfg.Pricer)

	var (
		repo    storage.RunsRepository
		ping    func() error
		cleanup = func() {}
	)
	if cfg.History.Enabled {
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		if err := migrator(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to migrate postgres: %w", err)
		}
		repo = storage.NewRunsRepository(db)
		ping = db.Ping
		cleanup = func() { _ = db.Close() }
	}

	logger.L().Info().
		Int("workers", engine.Workers()).
		Int("max_spots", cfg.Pricer.MaxSpots).
		Bool("history", cfg.History.Enabled).
		Msg("pricing engine configured")

	svc := service.NewPricingService(engine, repo, cfg.Pricer.MaxSpots)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(ping)
	healthHandler.Register(router)

	return router, cleanup, nil
}
