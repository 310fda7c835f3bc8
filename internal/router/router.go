package router

import (
	"context"
	"fmt"

	"github.com/Ibrahim-Omar1/DNNDON/internal/handlers"
	"github.com/Ibrahim-Omar1/DNNDON/internal/metrics"
	"github.com/Ibrahim-Omar1/DNNDON/internal/middleware"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
	"github.com/Ibrahim-Omar1/DNNDON/internal/repositories"
	"github.com/Ibrahim-Omar1/DNNDON/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// SetupMiddleware configures global Echo middleware.
func SetupMiddleware(e *echo.Echo, log zerolog.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Metrics())
	log.Debug().Msg("global middleware configured")
}

// SetupRoutes selects the repository for the configured storage driver and
// wires all application routes.
func SetupRoutes(e *echo.Echo, db *config.DB, cfg *config.Config, log zerolog.Logger) error {
	metrics.Init()

	repo, err := buildRepository(db, cfg, log)
	if err != nil {
		return err
	}

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	if cfg.AuthEnabled {
		api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		log.Info().Msg("JWT authentication enabled on /api/v1")
	}

	notificationHandler := handlers.NewNotificationHandler(repo, log)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Debug().Msg("notification routes configured")

	return nil
}

func buildRepository(db *config.DB, cfg *config.Config, log zerolog.Logger) (repositories.NotificationRepository, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		repo := repositories.NewMemoryNotificationRepository()
		if cfg.SeedData {
			if err := repositories.Seed(context.Background(), repo); err != nil {
				return nil, fmt.Errorf("seeding memory store: %w", err)
			}
			log.Info().Msg("memory store seeded with fixture data")
		}
		return repo, nil
	case config.DriverMongo:
		return repositories.NewMongoNotificationRepository(db.Mongo.Database(cfg.MongoDatabase)), nil
	case config.DriverPostgres:
		if err := db.Postgres.AutoMigrate(&models.Notification{}); err != nil {
			return nil, fmt.Errorf("auto migrating models: %w", err)
		}
		return repositories.NewGormNotificationRepository(db.Postgres), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
