package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/adapters/database/memory"
	"github.com/SscSPs/pres_finance_portal/internal/adapters/database/pgsql"
	"github.com/SscSPs/pres_finance_portal/internal/adapters/gateway/simulated"
	"github.com/SscSPs/pres_finance_portal/internal/adapters/messaging/amqp"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/SscSPs/pres_finance_portal/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
	"github.com/SscSPs/pres_finance_portal/internal/core/services"
	"github.com/SscSPs/pres_finance_portal/internal/handlers"
	"github.com/SscSPs/pres_finance_portal/internal/middleware"
	"github.com/SscSPs/pres_finance_portal/internal/platform/config"
	"github.com/SscSPs/pres_finance_portal/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Pres Finance Portal API
// @version 1.0
// @description Month-wallet ledger and report workflow for the Pres finance portal.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wallets := domain.NewAcademicYearWallets(cfg.AcademicYearStart, time.Now())

	repos, closeRepos, err := setupRepositories(ctx, cfg, wallets, logger)
	if err != nil {
		logger.Error("Failed to set up repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	gateway, closeGateway, err := setupReportGateway(cfg, logger)
	if err != nil {
		logger.Error("Failed to set up report gateway", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeGateway()

	serviceContainer := services.NewServiceContainer(repos, gateway, cfg.ReportStateMode)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Global middleware (logging, recovery, CORS, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting",
			slog.String("port", cfg.Port),
			slog.String("report_state_mode", string(cfg.ReportStateMode)),
			slog.Int("academic_year_start", cfg.AcademicYearStart))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// corsConfig lets the portal frontend call the API. With no origins configured every origin is allowed without credentials.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.CORSAllowedOrigins
	c.AllowCredentials = true
	return c
}

// setupRepositories keeps the ledger in Postgres when PGSQL_URL is set and in memory otherwise.
func setupRepositories(ctx context.Context, cfg *config.Config, wallets []domain.Wallet, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	sessionOpts := []memory.SessionRepositoryOption{
		memory.WithSessionTTL(cfg.SessionTTL),
		memory.WithMaxSessions(cfg.MaxSessions),
	}

	if !cfg.UsesDatabase() {
		logger.Info("Using in-memory ledger", slog.Int("wallets", len(wallets)))
		return memory.NewRepositoryProvider(wallets, sessionOpts...), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	walletRepo := pgsql.NewWalletRepository(dbPool, wallets)
	if err := walletRepo.EnsureWallets(ctx); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(walletRepo, sessionOpts...), dbPool.Close, nil
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// setupReportGateway publishes report events over AMQP when AMQP_URL is set
// and falls back to the simulated round trip otherwise.
func setupReportGateway(cfg *config.Config, logger *slog.Logger) (gateways.ReportGateway, func(), error) {
	if !cfg.UsesAMQP() {
		logger.Info("Using simulated report gateway", slog.Duration("delay", cfg.ReportGatewayDelay))
		return simulated.NewGateway(cfg.ReportGatewayDelay), func() {}, nil
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Publishing report events over AMQP",
		slog.String("exchange", cfg.AMQPExchange),
		slog.String("queue", cfg.AMQPQueue))

	return amqp.NewGateway(client), func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing AMQP client", slog.String("error", err.Error()))
		}
	}, nil
}
