package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/money_ops/internal/adapters/audit"
	"github.com/SscSPs/money_ops/internal/core/services"
	"github.com/SscSPs/money_ops/internal/handlers"
	"github.com/SscSPs/money_ops/internal/middleware"
	"github.com/SscSPs/money_ops/internal/platform/config"
	"github.com/SscSPs/money_ops/internal/utils"
	"github.com/SscSPs/money_ops/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	deps := audit.Dependencies{Logger: logger, NatsSubject: cfg.NatsAuditSubject}

	if cfg.UsesSink(audit.SinkPostgres) {
		pool := setupDatabase(cfg, logger)
		defer database.ClosePgxPool(pool)
		deps.Pool = pool
	}

	if cfg.UsesSink(audit.SinkPosthog) {
		posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
		defer posthogClient.Close()
		deps.Posthog = posthogClient
	}

	if cfg.UsesSink(audit.SinkNats) {
		nc, err := audit.ConnectNats(cfg.NatsURL, logger)
		if err != nil {
			logger.Error("Failed to connect to NATS", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := nc.Drain(); err != nil {
				logger.Error("Error draining NATS connection", slog.String("error", err.Error()))
			}
		}()
		deps.Nats = nc
	}

	auditPort, err := audit.Build(cfg.AuditSinks, deps)
	if err != nil {
		logger.Error("Failed to build audit sinks", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Audit sinks configured", slog.Any("sinks", cfg.AuditSinks))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, services.NewContainer(auditPort), middleware.RateLimit(rateLimiter))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupDatabase opens the pool backing the postgres audit sink and applies migrations.
func setupDatabase(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			dbPool.Close()
			os.Exit(1)
		}
	}
	return dbPool
}
