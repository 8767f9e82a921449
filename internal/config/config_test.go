package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.validate(); err != nil {
		t.Errorf("Default config should validate, got: %v", err)
	}
	if cfg.TopN != 5 || cfg.LowPerformerThreshold != 10 {
		t.Errorf("Unexpected defaults: TopN=%d threshold=%d", cfg.TopN, cfg.LowPerformerThreshold)
	}
	if cfg.CurrencySymbol != "₹" {
		t.Errorf("CurrencySymbol = %q, want ₹", cfg.CurrencySymbol)
	}
}

func TestLoad_NoPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.CatalogBaseURL != "https://dummyjson.com" {
		t.Errorf("CatalogBaseURL = %q, want default", cfg.CatalogBaseURL)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"input_path": "feed.txt",
		"report_path": "report.txt",
		"region": "North",
		"top_n": 3
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InputPath != "feed.txt" || cfg.ReportPath != "report.txt" {
		t.Errorf("Paths not applied: %+v", cfg)
	}
	if cfg.Region != "North" || cfg.TopN != 3 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	// Untouched fields keep their defaults.
	if cfg.CatalogPageSize != 100 {
		t.Errorf("CatalogPageSize = %d, want default 100", cfg.CatalogPageSize)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SALES_INPUT_PATH", "env-feed.txt")
	t.Setenv("SALES_REGION", "East")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InputPath != "env-feed.txt" {
		t.Errorf("InputPath = %q, want env override", cfg.InputPath)
	}
	if cfg.Region != "East" {
		t.Errorf("Region = %q, want East", cfg.Region)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input path", func(c *Config) { c.InputPath = "" }},
		{"empty report path", func(c *Config) { c.ReportPath = "" }},
		{"zero page size", func(c *Config) { c.CatalogPageSize = 0 }},
		{"zero top n", func(c *Config) { c.TopN = 0 }},
		{"zero threshold", func(c *Config) { c.LowPerformerThreshold = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
