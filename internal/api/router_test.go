package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/film-api/internal/core/domain"
	"github.com/filmcatalog/film-api/internal/core/service"
)

var (
	routerOnce sync.Once
	routerEcho *echo.Echo
	routerErr  error
)

// testRouter serves the router built against a lazily-opened connection
// pool: sqlx.Open does not dial, so routes that never touch the store can
// be exercised without a running database. The router is built once per
// process because the prometheus middleware registers collectors in the
// default registry.
func testRouter(t *testing.T) *httptest.Server {
	t.Helper()
	routerOnce.Do(func() {
		var db *sqlx.DB
		db, routerErr = sqlx.Open("postgres", "postgres://localhost:5432/film_api_test?sslmode=disable")
		if routerErr != nil {
			return
		}
		routerEcho = NewRouter(db, "test-secret", zerolog.Nop())
	})
	if routerErr != nil {
		t.Fatalf("open db handle: %v", routerErr)
	}

	srv := httptest.NewServer(routerEcho)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Status(t *testing.T) {
	srv := testRouter(t)

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["ok"] != true || body["service"] != "film-api" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRouter_UnmatchedRoute(t *testing.T) {
	srv := testRouter(t)

	resp, err := http.Get(srv.URL + "/no-such-route")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] != "route not found" {
		t.Fatalf("expected route not found, got %q", body["error"])
	}
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	srv := testRouter(t)

	resp, err := http.Post(srv.URL+"/movies", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

// A user-role token must be rejected by the admin-gated routes before the
// handler (and therefore the store) is ever reached.
func TestRouter_AdminRouteRejectsUserRole(t *testing.T) {
	srv := testRouter(t)

	tokens := service.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue(domain.Identity{UserID: 1, Username: "bob", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/movies/1", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] != "access forbidden" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRouter_TamperedTokenRejected(t *testing.T) {
	srv := testRouter(t)

	tokens := service.NewTokenService("wrong-secret", time.Hour)
	token, err := tokens.Issue(domain.Identity{UserID: 1, Username: "mallory", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/movies/1", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
