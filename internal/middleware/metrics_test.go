package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// Metrics Auth Middleware Tests
// =============================================================================

func metricsRequest(t *testing.T, mw *MetricsAuthMiddleware, auth func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("industry_service_analyses_total 3"))
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	if auth != nil {
		auth(req)
	}
	rec := httptest.NewRecorder()
	mw.Handler(handler).ServeHTTP(rec, req)
	return rec
}

func TestMetricsAuthMiddleware_AllowsValidCredentials(t *testing.T) {
	mw := NewMetricsAuthMiddleware("ops", "observa8ility")

	rec := metricsRequest(t, mw, func(r *http.Request) {
		r.SetBasicAuth("ops", "observa8ility")
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "industry_service_analyses_total 3" {
		t.Errorf("expected metrics body to pass through, got %q", rec.Body.String())
	}
}

func TestMetricsAuthMiddleware_RejectsBadCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong username", "admin", "observa8ility"},
		{"wrong password", "ops", "guess"},
		{"both wrong", "admin", "guess"},
		{"both empty", "", ""},
	}

	mw := NewMetricsAuthMiddleware("ops", "observa8ility")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := metricsRequest(t, mw, func(r *http.Request) {
				r.SetBasicAuth(tt.username, tt.password)
			})
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestMetricsAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	mw := NewMetricsAuthMiddleware("ops", "observa8ility")

	rec := metricsRequest(t, mw, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Error("expected WWW-Authenticate challenge header")
	}
}

func TestMetricsAuthMiddleware_RejectsMalformedHeader(t *testing.T) {
	mw := NewMetricsAuthMiddleware("ops", "observa8ility")

	rec := metricsRequest(t, mw, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer not-basic-auth")
	})

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for non-basic scheme, got %d", rec.Code)
	}
}

func TestMetricsAuthMiddleware_DisabledWhenNoCredentialsConfigured(t *testing.T) {
	mw := NewMetricsAuthMiddleware("", "")

	rec := metricsRequest(t, mw, nil)

	if rec.Code != http.StatusOK {
		t.Errorf("auth should be disabled with no configured credentials, got %d", rec.Code)
	}
}

func TestMetricsAuthMiddleware_PasswordOnlyStillEnforced(t *testing.T) {
	// A half-configured credential pair must not fail open.
	mw := NewMetricsAuthMiddleware("", "observa8ility")

	rec := metricsRequest(t, mw, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 when only a password is configured, got %d", rec.Code)
	}
}
