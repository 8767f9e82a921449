// Package config holds the runtime configuration for the sales analytics
// pipeline. Values come from an optional JSON file, overridden by
// environment variables (a local .env file is honored when present).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	InputPath  string `json:"input_path"`
	ReportPath string `json:"report_path"`

	CatalogBaseURL        string `json:"catalog_base_url"`
	CatalogPageSize       int    `json:"catalog_page_size"`
	CatalogTimeoutSeconds int    `json:"catalog_timeout_seconds"`

	// Region, when set, filters the validated set without prompting.
	Region string `json:"region"`

	TopN                  int    `json:"top_n"`
	LowPerformerThreshold int64  `json:"low_performer_threshold"`
	CurrencySymbol        string `json:"currency_symbol"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		InputPath:             "data/sales_data.txt",
		ReportPath:            "output/sales_report.txt",
		CatalogBaseURL:        "https://dummyjson.com",
		CatalogPageSize:       100,
		CatalogTimeoutSeconds: 30,
		TopN:                  5,
		LowPerformerThreshold: 10,
		CurrencySymbol:        "₹",
	}
}

// Load reads configuration from the JSON file at path (skipped when path
// is empty), applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	// Missing .env is not an error.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// CatalogTimeout converts the configured seconds into a duration.
func (c *Config) CatalogTimeout() time.Duration {
	return time.Duration(c.CatalogTimeoutSeconds) * time.Second
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SALES_INPUT_PATH"); v != "" {
		c.InputPath = v
	}
	if v := os.Getenv("SALES_REPORT_PATH"); v != "" {
		c.ReportPath = v
	}
	if v := os.Getenv("SALES_CATALOG_URL"); v != "" {
		c.CatalogBaseURL = v
	}
	if v := os.Getenv("SALES_REGION"); v != "" {
		c.Region = v
	}
	if v := os.Getenv("SALES_CATALOG_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CatalogPageSize = n
		}
	}
}

func (c *Config) validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input_path is required")
	}
	if c.ReportPath == "" {
		return fmt.Errorf("report_path is required")
	}
	if c.CatalogPageSize <= 0 {
		return fmt.Errorf("catalog_page_size must be positive")
	}
	if c.CatalogTimeoutSeconds <= 0 {
		c.CatalogTimeoutSeconds = 30 // sensible default
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive")
	}
	if c.LowPerformerThreshold <= 0 {
		return fmt.Errorf("low_performer_threshold must be positive")
	}
	if c.CurrencySymbol == "" {
		c.CurrencySymbol = "₹"
	}
	return nil
}
