package config

import (
	"strings"
	"testing"
)

func setAll(t *testing.T) {
	t.Setenv("DATABASE_DSN", "host=localhost user=test dbname=test")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_EMAIL", "Admin@Example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

func TestLoadConfigComplete(t *testing.T) {
	setAll(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("default port = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.CORSOrigins != "http://localhost:3000" {
		t.Errorf("default cors = %q", cfg.CORSOrigins)
	}
	if cfg.AdminEmail != "admin@example.com" {
		t.Errorf("admin email %q not normalized", cfg.AdminEmail)
	}
}

func TestLoadConfigFailsClosed(t *testing.T) {
	setAll(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error on missing required keys")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") || !strings.Contains(err.Error(), "ADMIN_PASSWORD_HASH") {
		t.Errorf("error %q must name the missing keys", err)
	}
}
