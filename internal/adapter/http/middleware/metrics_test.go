package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{
			name:       "normalizes store path",
			method:     http.MethodGet,
			path:       "/api/v1/stores/01ABC123",
			statusCode: http.StatusTeapot,
		},
		{
			name:       "keeps non-matching path as-is",
			method:     http.MethodPost,
			path:       "/health",
			statusCode: http.StatusCreated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpRequestsTotal.Reset()
			httpRequestDuration.Reset()
			httpRequestsInFlight.Set(0)

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			Metrics(next).ServeHTTP(rr, req)

			if !handlerCalled {
				t.Fatalf("next handler was not invoked")
			}

			if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
				t.Fatalf("expected in-flight gauge to return to 0, got %v", got)
			}

			normalized := normalizePath(tc.path)
			counter := httpRequestsTotal.WithLabelValues(tc.method, normalized, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected counter to be 1, got %v", got)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "store path without suffix",
			input:    "/api/v1/stores/01ABC123",
			expected: "/api/v1/stores/:id",
		},
		{
			name:     "savings account path",
			input:    "/api/v1/savings-accounts/01XYZ789",
			expected: "/api/v1/savings-accounts/:id",
		},
		{
			name:     "transfer path",
			input:    "/api/v1/transfers/01TRF456",
			expected: "/api/v1/transfers/:id",
		},
		{
			name:     "balance path keeps account kind",
			input:    "/api/v1/cash-balances/store/01ABC123",
			expected: "/api/v1/cash-balances/store/:id",
		},
		{
			name:     "reconciliation path keeps account kind",
			input:    "/api/v1/reconciliation/savings/01XYZ789",
			expected: "/api/v1/reconciliation/savings/:id",
		},
		{
			name:     "balance list path unchanged",
			input:    "/api/v1/cash-balances",
			expected: "/api/v1/cash-balances",
		},
		{
			name:     "non-matching path",
			input:    "/api/v1/health",
			expected: "/api/v1/health",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePath(tc.input); got != tc.expected {
				t.Fatalf("normalizePath(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
