package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iskender/paycore/internal/adapter/http"
	"github.com/iskender/paycore/internal/adapter/http/handler"
	postgresRepo "github.com/iskender/paycore/internal/adapter/repository/postgres"
	redisRepo "github.com/iskender/paycore/internal/adapter/repository/redis"
	"github.com/iskender/paycore/internal/infrastructure/auth"
	"github.com/iskender/paycore/internal/infrastructure/codec"
	"github.com/iskender/paycore/internal/infrastructure/config"
	"github.com/iskender/paycore/internal/infrastructure/kafka"
	"github.com/iskender/paycore/internal/infrastructure/logger"
	"github.com/iskender/paycore/internal/infrastructure/outbox"
	"github.com/iskender/paycore/internal/infrastructure/postgres"
	"github.com/iskender/paycore/internal/infrastructure/redis"
	"github.com/iskender/paycore/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply schema migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, resolveMigrationsPath()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis. The idempotency fast path is optional: when
	// Redis is unreachable the ledger probe still rejects replays.
	var idempotencyStore usecase.IdempotencyStore
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, idempotency fast path disabled")
	} else {
		defer redisClient.Close()
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		log.Info().Msg("connected to redis")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	eventCodec := codec.NewJSONCodec()
	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, idGen, retrier)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, ledgerRepo, outboxRepo, eventCodec, idGen, retrier)
	ledgerUC := usecase.NewLedgerUseCase(accountRepo, ledgerRepo)

	// Optional JWT auth; without a secret the gateway-supplied
	// X-User-Id header identifies the caller.
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		TransferHandler:  handler.NewTransferHandler(transferUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		JWTManager:       jwtManager,
		Logger:           appLogger,
	})

	// Start the outbox relay
	relayCtx, stopRelay := context.WithCancel(ctx)
	defer stopRelay()

	relay := outbox.NewRelay(outbox.Config{
		OutboxRepo: outboxRepo,
		Publisher:  selectPublisher(cfg),
		Logger:     slog.Default(),
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxRelayInterval,
	})
	go func() {
		if err := relay.Start(relayCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("outbox relay stopped")
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
	stopRelay()

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

// selectPublisher picks the broker-backed publisher, or a log-only one
// when no brokers are configured so local runs need no Kafka.
func selectPublisher(cfg *config.Config) outbox.Publisher {
	if len(cfg.KafkaBrokers) == 0 || cfg.KafkaBrokers[0] == "" {
		return outbox.NewLogPublisher(slog.Default())
	}
	return kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaWriteTimeout)
}
