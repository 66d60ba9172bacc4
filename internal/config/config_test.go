package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.MaxUploadSize != 5<<20 {
		t.Errorf("MaxUploadSize = %d, want 5MB", cfg.Server.MaxUploadSize)
	}
	if cfg.Store.Backend != "sheets" {
		t.Errorf("Backend = %q", cfg.Store.Backend)
	}
	if cfg.OCR.DPI != 300 {
		t.Errorf("DPI = %d", cfg.OCR.DPI)
	}
	if cfg.AI.Timeout != 60*time.Second {
		t.Errorf("AI timeout = %v", cfg.AI.Timeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("STORE_BACKEND", "firestore")
	t.Setenv("OCR_DPI", "150")
	t.Setenv("GEMINI_TIMEOUT", "10s")
	t.Setenv("GEMINI_VALIDATE_OUTPUT", "false")

	cfg := Load()

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.MaxUploadSize != 1<<20 {
		t.Errorf("MaxUploadSize = %d", cfg.Server.MaxUploadSize)
	}
	if cfg.Store.Backend != "firestore" {
		t.Errorf("Backend = %q", cfg.Store.Backend)
	}
	if cfg.OCR.DPI != 150 {
		t.Errorf("DPI = %d", cfg.OCR.DPI)
	}
	if cfg.AI.Timeout != 10*time.Second {
		t.Errorf("AI timeout = %v", cfg.AI.Timeout)
	}
	if cfg.AI.Validate {
		t.Error("Validate = true, want disabled")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("OCR_DPI", "high")

	cfg := Load()
	if cfg.Server.MaxUploadSize != 5<<20 {
		t.Errorf("MaxUploadSize = %d, want default kept", cfg.Server.MaxUploadSize)
	}
	if cfg.OCR.DPI != 300 {
		t.Errorf("DPI = %d, want default kept", cfg.OCR.DPI)
	}
}

func TestHasStoreCredentials(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Backend: "sheets"}}
	if cfg.HasStoreCredentials() {
		t.Error("sheets without spreadsheet id must report missing credentials")
	}
	cfg.Store.SpreadsheetID = "sheet-123"
	if !cfg.HasStoreCredentials() {
		t.Error("sheets with spreadsheet id must report credentials present")
	}

	cfg = &Config{Store: StoreConfig{Backend: "firestore", ProjectID: "proj"}}
	if !cfg.HasStoreCredentials() {
		t.Error("firestore with project id must report credentials present")
	}

	cfg = &Config{Store: StoreConfig{Backend: "memory"}}
	if cfg.HasStoreCredentials() {
		t.Error("memory backend never has external credentials")
	}
}
