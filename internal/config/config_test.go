package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("unexpected default addr %q", cfg.Addr)
	}
	if !cfg.OCREnabled || cfg.OCRDefaultLang != "eng" {
		t.Errorf("unexpected OCR defaults: enabled=%v lang=%q", cfg.OCREnabled, cfg.OCRDefaultLang)
	}
	if cfg.PhrasebookFile != "phrasebooks.json" {
		t.Errorf("unexpected phrasebook file %q", cfg.PhrasebookFile)
	}
	if cfg.TranslitTimeout != 30*time.Second {
		t.Errorf("unexpected translit timeout %v", cfg.TranslitTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("LIPI_ADDR", ":9999")
	t.Setenv("OCR_ENABLED", "false")
	t.Setenv("TRANSLIT_API_URL", "")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if cfg.OCREnabled {
		t.Error("expected OCR disabled")
	}
	if cfg.MaxUploadBytes != 2048 {
		t.Errorf("unexpected upload limit %d", cfg.MaxUploadBytes)
	}
	if cfg.TranslitAPIURL != "" {
		t.Errorf("explicit empty TRANSLIT_API_URL must disable the backend, got %q", cfg.TranslitAPIURL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "10")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected validation error for tiny upload limit")
	}

	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("TRANSLIT_TIMEOUT_MS", "1")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected validation error for tiny timeout")
	}
}
