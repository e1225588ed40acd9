package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all RISKD_ env vars to test pure defaults
	envVars := []string{
		"RISKD_PORT", "RISKD_METRICS_PORT", "RISKD_ADMIN_TOKEN",
		"RISKD_DATABASE_URL", "RISKD_EVENTS_URL", "RISKD_OCR_BACKEND",
		"RISKD_OCR_REMOTE_URL", "RISKD_OCR_REMOTE_TOKEN",
		"RISKD_OCR_TIMEOUT_MS", "RISKD_MODEL_INFO_PATH", "RISKD_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8081 {
		t.Errorf("expected metrics port 8081, got %d", cfg.Server.MetricsPort)
	}
	if cfg.OCR.Backend != "tesseract" {
		t.Errorf("expected tesseract backend, got %s", cfg.OCR.Backend)
	}
	if cfg.OCRTimeout() != 30*time.Second {
		t.Errorf("expected 30s OCR timeout, got %v", cfg.OCRTimeout())
	}
	if cfg.OCR.MaxFileBytes != 10*1024*1024 {
		t.Errorf("expected 10MB limit, got %d", cfg.OCR.MaxFileBytes)
	}
	if len(cfg.OCR.AllowedTypes) != 4 {
		t.Errorf("expected 4 allowed types, got %v", cfg.OCR.AllowedTypes)
	}
	if cfg.Scoring.Weights.Late90 != 0.35 {
		t.Errorf("expected late90 weight 0.35, got %f", cfg.Scoring.Weights.Late90)
	}
	if cfg.Scoring.Weights.UtilizationCap != 1.5 {
		t.Errorf("expected utilization cap 1.5, got %f", cfg.Scoring.Weights.UtilizationCap)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %s", cfg.Logging.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
ocr:
  backend: remote
  remote_url: https://vision.example.com
scoring:
  weights:
    late_90: 0.28
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.OCR.Backend != "remote" {
		t.Errorf("expected remote backend, got %s", cfg.OCR.Backend)
	}
	if cfg.OCR.RemoteURL != "https://vision.example.com" {
		t.Errorf("unexpected remote URL %s", cfg.OCR.RemoteURL)
	}
	if cfg.Scoring.Weights.Late90 != 0.28 {
		t.Errorf("expected overridden late90 0.28, got %f", cfg.Scoring.Weights.Late90)
	}
	// untouched defaults survive a partial file
	if cfg.Server.MetricsPort != 8081 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RISKD_PORT", "7001")
	t.Setenv("RISKD_OCR_BACKEND", "remote")
	t.Setenv("RISKD_DATABASE_URL", "postgres://localhost/riskd")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("expected env port 7001, got %d", cfg.Server.Port)
	}
	if cfg.OCR.Backend != "remote" {
		t.Errorf("expected env backend remote, got %s", cfg.OCR.Backend)
	}
	if cfg.Database.URL != "postgres://localhost/riskd" {
		t.Errorf("unexpected database URL %s", cfg.Database.URL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
