package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks a configuration for invalid or inconsistent values.
// It returns an error describing the first problem found.
func Validate(cfg *Config) error {
	if err := validateExpressions(&cfg.Expressions); err != nil {
		return err
	}
	if err := validateOutput(&cfg.Output); err != nil {
		return err
	}
	if err := validateServer(&cfg.Server); err != nil {
		return err
	}
	if err := validateHistory(&cfg.History); err != nil {
		return err
	}
	if err := validateTelemetry(&cfg.Telemetry); err != nil {
		return err
	}
	return nil
}

func validateExpressions(cfg *ExpressionsConfig) error {
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("expressions.max_depth must be positive, got %d", cfg.MaxDepth)
	}
	return nil
}

func validateOutput(cfg *OutputConfig) error {
	switch cfg.Notation {
	case "prefix", "infix", "postfix":
	default:
		return fmt.Errorf("output.notation must be prefix, infix, or postfix, got %q", cfg.Notation)
	}
	switch cfg.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", cfg.Format)
	}
	return nil
}

func validateServer(cfg *ServerConfig) error {
	if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		return fmt.Errorf("server.listen_address %q is not host:port: %w", cfg.ListenAddress, err)
	}
	if cfg.MaxHeaderBytes <= 0 {
		return fmt.Errorf("server.max_header_bytes must be positive, got %d", cfg.MaxHeaderBytes)
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", cfg.MaxBodyBytes)
	}
	return nil
}

func validateHistory(cfg *HistoryConfig) error {
	if cfg.Enabled && strings.TrimSpace(cfg.Path) == "" {
		return fmt.Errorf("history.path must be set when history is enabled")
	}
	if cfg.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must not be negative, got %d", cfg.RetentionDays)
	}
	if cfg.MaxRecords < 0 {
		return fmt.Errorf("history.max_records must not be negative, got %d", cfg.MaxRecords)
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("telemetry.logging.level must be debug, info, warn, or error, got %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "json", "text", "console":
	default:
		return fmt.Errorf("telemetry.logging.format must be json, text, or console, got %q", cfg.Logging.Format)
	}
	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("telemetry.metrics.path must start with /, got %q", cfg.Metrics.Path)
	}
	return nil
}
