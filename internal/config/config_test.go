package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.WorkerCount != 8 {
		t.Fatalf("WorkerCount = %d, want 8", cfg.WorkerCount)
	}
	if !cfg.CacheEnabled {
		t.Fatal("cache must default to enabled")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("I18N_BUNDLE_DIRS", "i18n, shared/i18n")
	t.Setenv("I18N_DEFAULT_LOCALE", "en")
	t.Setenv("I18N_WORKER_COUNT", "2")
	t.Setenv("I18N_CACHE", "false")

	cfg := Load()

	if diff := cmp.Diff([]string{"i18n", "shared/i18n"}, cfg.BundleDirs); diff != "" {
		t.Fatalf("BundleDirs mismatch (-want +got):\n%s", diff)
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}
	if cfg.WorkerCount != 2 {
		t.Fatalf("WorkerCount = %d", cfg.WorkerCount)
	}
	if cfg.CacheEnabled {
		t.Fatal("cache must be disabled")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("I18N_WORKER_COUNT", "not-a-number")
	t.Setenv("I18N_CACHE", "not-a-bool")

	cfg := Load()
	if cfg.WorkerCount != 8 {
		t.Fatalf("WorkerCount = %d, want fallback 8", cfg.WorkerCount)
	}
	if !cfg.CacheEnabled {
		t.Fatal("expected fallback true")
	}
}
