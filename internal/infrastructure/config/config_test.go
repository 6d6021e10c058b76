package config

import (
	"context"
	"os"
	"testing"
)

// clearEnv unsets keys for the duration of the test so ambient values
// (a developer's PORT, DATABASE_URL, ...) cannot leak into assertions.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // registers restore on cleanup
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "PORT", "ENV", "LOG_LEVEL", "DATABASE_URL")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "3300" {
		t.Fatalf("expected default port 3300, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %q", cfg.Env)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Fatalf("unexpected secret: %q", cfg.JWTSecret)
	}
	if cfg.Database.URL == "" {
		t.Fatalf("expected a default database url")
	}
}

// The process must refuse to boot without a signing key.
func TestLoad_MissingJWTSecret(t *testing.T) {
	clearEnv(t, "JWT_SECRET")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://example:5432/other")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Database.URL != "postgres://example:5432/other" {
		t.Fatalf("unexpected database url: %q", cfg.Database.URL)
	}
}
