package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ralastessh/Industry-service/internal/domain"
)

// =============================================================================
// Error Response Tests
// =============================================================================

func TestErrorResponse_DoesNotExposeOperationName(t *testing.T) {
	err := domain.Invalid("analysis.analyze", "work_type is required")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r, testLogger(), err)
	})

	req := httptest.NewRequest("POST", "/api/analyses", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "analysis.analyze") {
		t.Errorf("response exposes internal operation name: %s", body)
	}
	if !strings.Contains(body, "work_type is required") {
		t.Errorf("response should carry the validation message: %s", body)
	}
}

func TestErrorResponse_InternalErrorsAreGeneric(t *testing.T) {
	err := domain.Internal(errors.New("corpus file corrupt at byte 1337"), "corpus.load", "failed to load corpus")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r, testLogger(), err)
	})

	req := httptest.NewRequest("GET", "/api/analyses", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "corrupt at byte") {
		t.Errorf("response exposes internal error details: %s", body)
	}
}

func TestErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{domain.EINVALID, http.StatusBadRequest},
		{domain.ENOTFOUND, http.StatusNotFound},
		{domain.ERATELIMIT, http.StatusTooManyRequests},
		{domain.EMALFORMED, http.StatusBadGateway},
		{domain.EUNAVAILABLE, http.StatusServiceUnavailable},
		{domain.EINTERNAL, http.StatusInternalServerError},
		{"something_else", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := ErrorCodeToHTTPStatus(tt.code); got != tt.want {
			t.Errorf("ErrorCodeToHTTPStatus(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestErrorResponse_PlainErrorBecomesInternal(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r, testLogger(), errors.New("boom"))
	})

	req := httptest.NewRequest("GET", "/api/quiz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for unwrapped error, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Errorf("response exposes raw error: %s", rec.Body.String())
	}
}
