package config

import "time"

// DefaultConfig returns a configuration populated with default values for
// every section. LoadConfig unmarshals file contents over these defaults, so
// omitted fields keep their documented default.
func DefaultConfig() *Config {
	return &Config{
		Expressions: ExpressionsConfig{
			ConstantFolding:  true,
			AllowAnyOperator: false,
			MaxDepth:         512,
		},
		Output: OutputConfig{
			Notation: "prefix",
			Format:   "text",
		},
		Server: ServerConfig{
			ListenAddress:   "127.0.0.1:8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxHeaderBytes:  1 << 20,
			MaxBodyBytes:    1 << 20,
		},
		History: HistoryConfig{
			Enabled:       false,
			Path:          "data/history.db",
			MaxOpenConns:  10,
			MaxIdleConns:  5,
			BusyTimeout:   5 * time.Second,
			RetentionDays: 30,
			MaxRecords:    0,
			PruneSchedule: "0 3 * * *",
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:  "info",
				Format: "text",
			},
			Metrics: MetricsConfig{
				Enabled:   true,
				Namespace: "binexpr",
				Path:      "/metrics",
			},
		},
	}
}

// ApplyDefaults fills zero-valued fields that must never be zero at runtime.
// It is called after unmarshalling so an explicitly zeroed field that has no
// sensible zero interpretation falls back to its default.
func ApplyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.Expressions.MaxDepth <= 0 {
		cfg.Expressions.MaxDepth = def.Expressions.MaxDepth
	}
	if cfg.Output.Notation == "" {
		cfg.Output.Notation = def.Output.Notation
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = def.Server.ListenAddress
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes <= 0 {
		cfg.Server.MaxHeaderBytes = def.Server.MaxHeaderBytes
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = def.Server.MaxBodyBytes
	}
	if cfg.History.Path == "" {
		cfg.History.Path = def.History.Path
	}
	if cfg.History.MaxOpenConns <= 0 {
		cfg.History.MaxOpenConns = def.History.MaxOpenConns
	}
	if cfg.History.MaxIdleConns <= 0 {
		cfg.History.MaxIdleConns = def.History.MaxIdleConns
	}
	if cfg.History.BusyTimeout <= 0 {
		cfg.History.BusyTimeout = def.History.BusyTimeout
	}
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = def.Telemetry.Logging.Level
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = def.Telemetry.Logging.Format
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = def.Telemetry.Metrics.Namespace
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = def.Telemetry.Metrics.Path
	}
}
