package main

import (
	"os"

	"github.com/Ibrahim-Omar1/DNNDON/internal/router"
	"github.com/Ibrahim-Omar1/DNNDON/pkg/config"
	"github.com/Ibrahim-Omar1/DNNDON/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e, log)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	log.Info().Str("port", cfg.Port).Str("driver", cfg.StorageDriver).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
