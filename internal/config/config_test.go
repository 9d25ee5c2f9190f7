package config

import (
	"testing"
	"time"
)

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when GEMINI_API_KEY is unset, got nil")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Extraction.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want %q", cfg.Extraction.APIKey, "test-key")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Extraction.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want %q", cfg.Extraction.Model, "gemini-2.5-flash")
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Logger.Level, "info")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "5")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Extraction.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want %q", cfg.Extraction.Model, "gemini-2.5-pro")
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("Level = %q, want %q", cfg.Logger.Level, "debug")
	}
}
