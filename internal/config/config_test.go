package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads; blank values take envDefault.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR",
		"LOG_LEVEL",
		"CATALOG_ID",
		"SIM_WORKERS",
		"SIM_MAX_TRIALS",
		"SIM_DEFAULT_TRIALS",
		"SIM_REQUEST_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.DefaultTrials != 10000 || cfg.MaxTrials != 1000000 {
		t.Errorf("unexpected trial limits: %+v", cfg)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.Workers != 0 {
		t.Errorf("expected 0 workers, got %d", cfg.Workers)
	}
	if cfg.CatalogID != "nemesis" {
		t.Errorf("expected nemesis catalog, got %q", cfg.CatalogID)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SIM_WORKERS", "3")
	t.Setenv("SIM_REQUEST_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9000" || cfg.LogLevel != slog.LevelDebug || cfg.Workers != 3 || cfg.RequestTimeout != 2*time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadParseError(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_WORKERS", "many")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestLoadRejectsDefaultAboveMax(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_MAX_TRIALS", "100")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when default trials exceed the maximum")
	}
}
