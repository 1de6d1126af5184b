package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/kioko/vaultledger/internal/adapter/http"
	"github.com/kioko/vaultledger/internal/adapter/http/handler"
	"github.com/kioko/vaultledger/internal/adapter/http/middleware"
	postgresRepo "github.com/kioko/vaultledger/internal/adapter/repository/postgres"
	redisRepo "github.com/kioko/vaultledger/internal/adapter/repository/redis"
	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/auth"
	"github.com/kioko/vaultledger/internal/infrastructure/config"
	"github.com/kioko/vaultledger/internal/infrastructure/eventpublisher"
	"github.com/kioko/vaultledger/internal/infrastructure/logger"
	"github.com/kioko/vaultledger/internal/infrastructure/metrics"
	"github.com/kioko/vaultledger/internal/infrastructure/postgres"
	"github.com/kioko/vaultledger/internal/infrastructure/redis"
	"github.com/kioko/vaultledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, resolveMigrationsPath()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()
	clock := usecase.SystemClock{}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	vaultRepo := postgresRepo.NewVaultRepository(pool)
	clientRepo := postgresRepo.NewClientRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	cashCountRepo := postgresRepo.NewCashCountRepository(pool)
	processingRepo := postgresRepo.NewCashProcessingRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	vaultUC := usecase.NewVaultUseCase(txManager, vaultRepo, entryRepo, outboxRepo, idGen, clock, appMetrics)
	clientUC := usecase.NewClientUseCase(clientRepo, entryRepo)
	cashCountUC := usecase.NewCashCountUseCase(cashCountRepo, idGen, clock, appMetrics)
	certificateUC := usecase.NewCertificateUseCase(
		vaultRepo,
		clientRepo,
		entryRepo,
		cache,
		domain.ParseReversalPolicy(cfg.CertificateReversalPolicy),
		appLogger,
		appMetrics,
	)
	reconciliationUC := usecase.NewReconciliationUseCase(
		txManager,
		cashCountRepo,
		processingRepo,
		vaultRepo,
		entryRepo,
		outboxRepo,
		idGen,
		clock,
		appLogger,
		appMetrics,
	)

	// Initialize handlers
	vaultHandler := handler.NewVaultHandler(vaultUC)
	clientHandler := handler.NewClientHandler(clientUC)
	certificateHandler := handler.NewCertificateHandler(certificateUC, clock)
	cashCountHandler := handler.NewCashCountHandler(cashCountUC)
	reconciliationHandler := handler.NewReconciliationHandler(reconciliationUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Authentication is optional; without a secret the API is open.
	var jwtManager *auth.JWTManager
	var sessionManager *auth.SessionManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration, nil)
		sessionManager = auth.NewSessionManager(cfg.SessionTimeout, clock)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		VaultHandler:          vaultHandler,
		ClientHandler:         clientHandler,
		CertificateHandler:    certificateHandler,
		CashCountHandler:      cashCountHandler,
		ReconciliationHandler: reconciliationHandler,
		HealthHandler:         healthHandler,
		IdempotencyStore:      idempotencyStore,
		RateLimiter:           middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		JWTManager:            jwtManager,
		SessionManager:        sessionManager,
	})

	// Start the outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(appLogger),
		Logger:     appLogger,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func resolveMigrationsPath() string {
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		return path
	}
	return "migrations"
}
