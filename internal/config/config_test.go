package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromFile(t *testing.T) {
	content := `
[backend]
url = "https://printers.example.com/api"
timeout_seconds = 30
`
	dir := t.TempDir()
	path := filepath.Join(dir, "printscout.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Backend.URL != "https://printers.example.com/api" {
		t.Errorf("backend.url = %q", cfg.Backend.URL)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Timeout())
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	content := `
[backend]
url = "http://localhost:9999"
`
	dir := t.TempDir()
	path := filepath.Join(dir, "printscout.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Backend.URL != "http://localhost:9999" {
		t.Errorf("backend.url = %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSeconds != 15 {
		t.Errorf("timeout_seconds = %d, want default 15", cfg.Backend.TimeoutSeconds)
	}
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/printscout.toml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Backend.URL == "" {
		t.Error("default backend URL is empty")
	}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("default timeout = %v, want 15s", cfg.Timeout())
	}
}
