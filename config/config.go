package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wzgold/tradelog/analytics"
	"github.com/wzgold/tradelog/journal"
)

// Config holds everything the CLI needs to open a journal session.
type Config struct {
	// DBPath is the SQLite database file backing the journal.
	DBPath string `json:"db_path" yaml:"db_path"`
	// User is the current user identity supplied by whatever handles
	// authentication. Profile operations are refused when it is empty.
	User string `json:"user" yaml:"user"`
	// Currency is the default currency for new profiles.
	Currency string `json:"currency" yaml:"currency"`
	// Period is the default display period for stats and balance views.
	Period string `json:"period" yaml:"period"`
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, picking the format by extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if !journal.Currency(c.Currency).Valid() {
		return fmt.Errorf("currency must be USD or IDR, got %q", c.Currency)
	}
	if _, err := analytics.ParsePeriod(c.Period); err != nil {
		return fmt.Errorf("period: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		DBPath:   "./tradelog.sqlite",
		Currency: string(journal.USD),
		Period:   analytics.All.String(),
	}
}
