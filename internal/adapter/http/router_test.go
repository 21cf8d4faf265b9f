package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/handler"
	apimiddleware "github.com/Ashish092/Rollin-Pos/internal/adapter/http/middleware"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/auth"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
	"github.com/Ashish092/Rollin-Pos/internal/usecase/mocks"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"store_code":"S01","branch":"Main","address":"1 High St"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stores/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_AuthRejectsAnonymousRequests(t *testing.T) {
	manager := auth.NewJWTManager("router-test-secret", time.Hour)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = manager
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected anonymous request to be rejected, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/stores/",
		"GET /api/v1/stores/",
		"GET /api/v1/stores/{id}",
		"POST /api/v1/savings-accounts/",
		"POST /api/v1/transactions/",
		"POST /api/v1/transfers/",
		"GET /api/v1/transfers/{id}",
		"GET /api/v1/cash-balances/{kind}/{id}",
		"POST /api/v1/cash-history/compute",
		"GET /api/v1/reconciliation/",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	logger := zerolog.Nop()
	idGen := mocks.NewMockIDGenerator()

	storeRepo := mocks.NewMockStoreRepository()
	savingsRepo := mocks.NewMockSavingsAccountRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	transferRepo := mocks.NewMockTransferRepository()
	balanceRepo := mocks.NewMockBalanceRepository()
	historyRepo := mocks.NewMockHistoryRepository()
	userRepo := mocks.NewMockUserRepository()

	manager := auth.NewJWTManager("router-test-secret", time.Hour)

	cfg := RouterConfig{
		StoreHandler:       handler.NewStoreHandler(usecase.NewStoreUseCase(storeRepo, idGen)),
		SavingsHandler:     handler.NewSavingsHandler(usecase.NewSavingsAccountUseCase(savingsRepo, idGen)),
		TransactionHandler: handler.NewTransactionHandler(usecase.NewTransactionUseCase(transactionRepo, balanceRepo, storeRepo, savingsRepo, idGen, logger)),
		TransferHandler:    handler.NewTransferHandler(usecase.NewTransferUseCase(transactionRepo, transferRepo, balanceRepo, storeRepo, savingsRepo, idGen, logger)),
		BalanceHandler:     handler.NewBalanceHandler(usecase.NewBalanceUseCase(balanceRepo)),
		HistoryHandler:     handler.NewHistoryHandler(usecase.NewHistoryUseCase(historyRepo, transactionRepo)),
		LedgerHandler:      handler.NewLedgerHandler(usecase.NewReconciliationUseCase(balanceRepo, transactionRepo)),
		AuthHandler:        handler.NewAuthHandler(usecase.NewUserUseCase(userRepo, idGen), manager),
		HealthHandler:      &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
