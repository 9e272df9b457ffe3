package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// File contents are unmarshalled over the default configuration, remaining
// zero-value gaps are filled, and the result is validated.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention BINEXPR_SECTION_FIELD (e.g., BINEXPR_SERVER_LISTEN_ADDRESS) and
// always take precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// DefaultWithEnvOverrides returns the default configuration with BINEXPR_*
// environment overrides applied. It is used when no configuration file is
// given on the command line.
func DefaultWithEnvOverrides() (*Config, error) {
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	// Expression overrides
	if val := os.Getenv("BINEXPR_EXPRESSIONS_CONSTANT_FOLDING"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Expressions.ConstantFolding = b
		}
	}
	if val := os.Getenv("BINEXPR_EXPRESSIONS_ALLOW_ANY_OPERATOR"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Expressions.AllowAnyOperator = b
		}
	}
	if val := os.Getenv("BINEXPR_EXPRESSIONS_MAX_DEPTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Expressions.MaxDepth = n
		}
	}

	// Output overrides
	if val := os.Getenv("BINEXPR_OUTPUT_NOTATION"); val != "" {
		cfg.Output.Notation = val
	}
	if val := os.Getenv("BINEXPR_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}

	// Server overrides
	if val := os.Getenv("BINEXPR_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("BINEXPR_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("BINEXPR_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}

	// History overrides
	if val := os.Getenv("BINEXPR_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("BINEXPR_HISTORY_PATH"); val != "" {
		cfg.History.Path = val
	}
	if val := os.Getenv("BINEXPR_HISTORY_RETENTION_DAYS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.History.RetentionDays = n
		}
	}

	// Telemetry overrides
	if val := os.Getenv("BINEXPR_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("BINEXPR_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("BINEXPR_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
}
