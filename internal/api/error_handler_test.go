package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"movie not found", domain.ErrMovieNotFound, http.StatusNotFound, "movie not found"},
		{"director not found", domain.ErrDirectorNotFound, http.StatusNotFound, "director not found"},
		{"duplicate username", domain.ErrUsernameTaken, http.StatusConflict, "username already taken"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if body["error"] != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, body["error"])
			}
		})
	}
}

func TestErrorHandler_RouteNotFound(t *testing.T) {
	code, body := renderError(t, echo.ErrNotFound)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if body["error"] != "route not found" {
		t.Fatalf("expected route not found, got %q", body["error"])
	}
}

// Unexpected errors must render an opaque message: the real cause is only
// ever logged server-side.
func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("expected generic message, got %q", body["error"])
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, _ := renderError(t, errors.Join(errors.New("get movie"), domain.ErrMovieNotFound))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped domain error, got %d", code)
	}
}
