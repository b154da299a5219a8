// ABOUTME: Tests for environment configuration loading
// ABOUTME: Covers defaults and explicit overrides

package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBase != "http://localhost:8000/api/v1" {
		t.Errorf("unexpected default base URL: %q", cfg.APIBase)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected default log level: %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STL_ADMIN_API_BASE", "https://api.stlauto.uz/api/v1")
	t.Setenv("STL_ADMIN_LOG_LEVEL", "debug")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBase != "https://api.stlauto.uz/api/v1" {
		t.Errorf("expected override, got %q", cfg.APIBase)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
}
