package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := Validate(DefaultConfig()); err != nil {
		t.Errorf("DefaultConfig() should validate: %v", err)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !cfg.Expressions.ConstantFolding {
		t.Error("constant folding should default to true")
	}
	if cfg.Expressions.MaxDepth != 512 {
		t.Errorf("MaxDepth = %d, want 512", cfg.Expressions.MaxDepth)
	}
	if cfg.Output.Notation != "prefix" {
		t.Errorf("Notation = %q, want %q", cfg.Output.Notation, "prefix")
	}
	if cfg.Server.ListenAddress != "127.0.0.1:8080" {
		t.Errorf("ListenAddress = %q, want %q", cfg.Server.ListenAddress, "127.0.0.1:8080")
	}
	if cfg.History.BusyTimeout != 5*time.Second {
		t.Errorf("BusyTimeout = %v, want 5s", cfg.History.BusyTimeout)
	}
	if cfg.Telemetry.Metrics.Namespace != "binexpr" {
		t.Errorf("Namespace = %q, want %q", cfg.Telemetry.Metrics.Namespace, "binexpr")
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
expressions:
  constant_folding: false
output:
  notation: infix
history:
  enabled: true
  path: /tmp/test-history.db
  retention_days: 7
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Expressions.ConstantFolding {
		t.Error("constant folding should be disabled by explicit false")
	}
	if cfg.Output.Notation != "infix" {
		t.Errorf("Notation = %q, want %q", cfg.Output.Notation, "infix")
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled")
	}
	if cfg.History.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, want 7", cfg.History.RetentionDays)
	}
	// Untouched sections keep defaults.
	if cfg.Telemetry.Logging.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Telemetry.Logging.Level, "info")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadConfig() should fail for a missing file")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad notation", "output:\n  notation: sideways\n"},
		{"bad format", "output:\n  format: xml\n"},
		{"bad listen address", "server:\n  listen_address: not-an-address\n"},
		{"bad log level", "telemetry:\n  logging:\n    level: loud\n"},
		{"negative retention", "history:\n  retention_days: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() should reject invalid configuration")
			}
		})
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "output:\n  notation: prefix\n")

	t.Setenv("BINEXPR_OUTPUT_NOTATION", "postfix")
	t.Setenv("BINEXPR_EXPRESSIONS_CONSTANT_FOLDING", "false")
	t.Setenv("BINEXPR_SERVER_LISTEN_ADDRESS", "0.0.0.0:9090")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() failed: %v", err)
	}

	if cfg.Output.Notation != "postfix" {
		t.Errorf("Notation = %q, want env override %q", cfg.Output.Notation, "postfix")
	}
	if cfg.Expressions.ConstantFolding {
		t.Error("env override should disable constant folding")
	}
	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("ListenAddress = %q, want %q", cfg.Server.ListenAddress, "0.0.0.0:9090")
	}
}
