package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DOMGEST_API_KEY", "WORKER_COUNT", "MAX_QUEUE_SIZE", "MAX_UPLOAD_BYTES", "MINIFY_INPUT", "JOB_TTL", "STATS_WINDOW", "PDF_FALLBACK_PDFTOTEXT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8091" {
		t.Errorf("expected default port %q, got %q", "8091", cfg.Port)
	}
	if cfg.WorkerCount != 4 || cfg.MaxQueueSize != 100 {
		t.Errorf("unexpected worker defaults: %d workers, %d queue", cfg.WorkerCount, cfg.MaxQueueSize)
	}
	if !cfg.MinifyInput {
		t.Error("expected minification on by default")
	}
	if cfg.JobTTL != time.Hour || cfg.StatsWindow != time.Hour {
		t.Errorf("unexpected durations: ttl=%s window=%s", cfg.JobTTL, cfg.StatsWindow)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("MINIFY_INPUT", "false")
	t.Setenv("JOB_TTL", "90s")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")

	cfg := Load()
	if cfg.Port != "9000" || cfg.WorkerCount != 8 || cfg.MaxUploadBytes != 2048 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.MinifyInput {
		t.Error("expected minification disabled")
	}
	if cfg.JobTTL != 90*time.Second {
		t.Errorf("expected ttl 90s, got %s", cfg.JobTTL)
	}
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-1")
	t.Setenv("MAX_QUEUE_SIZE", "abc")
	t.Setenv("JOB_TTL", "-5m")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("expected clamped worker count 4, got %d", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("expected fallback queue size 100, got %d", cfg.MaxQueueSize)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected clamped ttl 1h, got %s", cfg.JobTTL)
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{Port: "8091"}).Validate(); err == nil {
		t.Error("expected error for missing api key")
	}
	if err := (Config{Port: "http", DomgestAPIKey: "k"}).Validate(); err == nil {
		t.Error("expected error for non-numeric port")
	}
	if err := (Config{Port: "8091", DomgestAPIKey: "k"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
