package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/devdecrux/pocketr_api/internal/core/services"
	"github.com/devdecrux/pocketr_api/internal/events"
	"github.com/devdecrux/pocketr_api/internal/handlers"
	"github.com/devdecrux/pocketr_api/internal/middleware"
	"github.com/devdecrux/pocketr_api/internal/platform/config"
	"github.com/devdecrux/pocketr_api/internal/repositories/database/pgsql"
	"github.com/devdecrux/pocketr_api/internal/seed"
	"github.com/devdecrux/pocketr_api/pkg/database"
)

// @title Pocketr API
// @version 1.0
// @description Household budgeting ledger: accounts, double-entry transactions, balances and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	publisher, err := events.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize event publisher", slog.String("driver", cfg.EventsDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing event publisher", slog.String("error", cerr.Error()))
		}
	}()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, publisher)

	if cfg.SeedCurrencies {
		currencies, err := seed.Currencies()
		if err != nil {
			logger.Error("Failed to load currency seed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if _, err := serviceContainer.Currency.SeedCurrencies(ctx, currencies); err != nil {
			logger.Error("Failed to seed currencies", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("events_driver", cfg.EventsDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
