package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/handler"
	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/middleware"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/auth"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	StoreHandler       *handler.StoreHandler
	SavingsHandler     *handler.SavingsHandler
	TransactionHandler *handler.TransactionHandler
	TransferHandler    *handler.TransferHandler
	BalanceHandler     *handler.BalanceHandler
	HistoryHandler     *handler.HistoryHandler
	LedgerHandler      *handler.LedgerHandler
	AuthHandler        *handler.AuthHandler
	HealthHandler      *handler.HealthHandler

	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter

	// JWTManager enables authentication on /api/v1 when set.
	JWTManager *auth.JWTManager
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Role gates are identity functions when auth is disabled.
	writer := passthrough
	admin := passthrough
	if cfg.JWTManager != nil {
		writer = middleware.RequireWriter
		admin = middleware.RequireAdmin
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		if cfg.AuthHandler != nil {
			r.Post("/auth/login", cfg.AuthHandler.Login)
		}

		r.Group(func(r chi.Router) {
			if cfg.JWTManager != nil {
				r.Use(middleware.Auth(cfg.JWTManager))
				r.Get("/auth/me", cfg.AuthHandler.Me)
			}

			// Stores
			r.Route("/stores", func(r chi.Router) {
				r.With(writer).Post("/", cfg.StoreHandler.Create)
				r.Get("/", cfg.StoreHandler.List)
				r.Get("/{id}", cfg.StoreHandler.Get)
				r.With(writer).Put("/{id}", cfg.StoreHandler.Update)
				r.With(admin).Delete("/{id}", cfg.StoreHandler.Delete)
			})

			// Savings accounts
			r.Route("/savings-accounts", func(r chi.Router) {
				r.With(writer).Post("/", cfg.SavingsHandler.Create)
				r.Get("/", cfg.SavingsHandler.List)
				r.Get("/{id}", cfg.SavingsHandler.Get)
				r.With(writer).Put("/{id}", cfg.SavingsHandler.Update)
				r.With(admin).Delete("/{id}", cfg.SavingsHandler.Delete)
			})

			// Transactions
			r.Route("/transactions", func(r chi.Router) {
				r.With(writer).Post("/", cfg.TransactionHandler.Create)
				r.Get("/", cfg.TransactionHandler.List)
			})

			// Transfers
			r.Route("/transfers", func(r chi.Router) {
				r.With(writer).Post("/", cfg.TransferHandler.Create)
				r.Get("/", cfg.TransferHandler.List)
				r.Get("/{id}", cfg.TransferHandler.Get)
			})

			// Cash balances
			r.Route("/cash-balances", func(r chi.Router) {
				r.Get("/", cfg.BalanceHandler.List)
				r.Get("/{kind}/{id}", cfg.BalanceHandler.Get)
				r.With(writer).Post("/adjust", cfg.BalanceHandler.Adjust)
			})

			// Daily cash history
			r.Route("/cash-history", func(r chi.Router) {
				r.With(writer).Post("/compute", cfg.HistoryHandler.Compute)
				r.Get("/", cfg.HistoryHandler.List)
			})

			// Reconciliation
			r.Route("/reconciliation", func(r chi.Router) {
				r.Get("/", cfg.LedgerHandler.CheckAll)
				r.Get("/{kind}/{id}", cfg.LedgerHandler.CheckAccount)
			})
		})
	})

	return r
}

func passthrough(next http.Handler) http.Handler {
	return next
}
