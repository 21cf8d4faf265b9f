package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/Ashish092/Rollin-Pos/internal/adapter/http"
	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/handler"
	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/middleware"
	postgresRepo "github.com/Ashish092/Rollin-Pos/internal/adapter/repository/postgres"
	redisRepo "github.com/Ashish092/Rollin-Pos/internal/adapter/repository/redis"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/auth"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/config"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/logger"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/postgres"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/redis"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run schema migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(log)
	storeRepo := postgresRepo.NewStoreRepository(pool)
	savingsRepo := postgresRepo.NewSavingsAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	transferRepo := postgresRepo.NewTransferRepository(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool, retrier)
	historyRepo := postgresRepo.NewHistoryRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	storeUC := usecase.NewStoreUseCase(storeRepo, idGen)
	savingsUC := usecase.NewSavingsAccountUseCase(savingsRepo, idGen)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, balanceRepo, storeRepo, savingsRepo, idGen, log)
	transferUC := usecase.NewTransferUseCase(transactionRepo, transferRepo, balanceRepo, storeRepo, savingsRepo, idGen, log)
	balanceUC := usecase.NewBalanceUseCase(balanceRepo)
	historyUC := usecase.NewHistoryUseCase(historyRepo, transactionRepo)
	reconciliationUC := usecase.NewReconciliationUseCase(balanceRepo, transactionRepo)

	// Authentication is optional, enabled by config
	var jwtManager *auth.JWTManager
	var authHandler *handler.AuthHandler
	if cfg.AuthEnabled {
		if cfg.JWTSecret == "" {
			log.Fatal().Msg("AUTH_ENABLED requires JWT_SECRET to be set")
		}
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		authHandler = handler.NewAuthHandler(usecase.NewUserUseCase(userRepo, idGen), jwtManager)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		StoreHandler:       handler.NewStoreHandler(storeUC),
		SavingsHandler:     handler.NewSavingsHandler(savingsUC),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		TransferHandler:    handler.NewTransferHandler(transferUC),
		BalanceHandler:     handler.NewBalanceHandler(balanceUC),
		HistoryHandler:     handler.NewHistoryHandler(historyUC),
		LedgerHandler:      handler.NewLedgerHandler(reconciliationUC),
		AuthHandler:        authHandler,
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitBurst),
		JWTManager:         jwtManager,
	})

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
