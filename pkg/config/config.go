package config

import "time"

// Config is the root configuration structure for binexpr.
// It contains all configuration sections for expression processing, the HTTP
// service, history storage, and telemetry.
type Config struct {
	// Expressions contains parser and simplifier settings.
	Expressions ExpressionsConfig `yaml:"expressions"`

	// Output contains default output settings for the CLI.
	Output OutputConfig `yaml:"output"`

	// Server contains HTTP service configuration including listen address
	// and timeouts.
	Server ServerConfig `yaml:"server"`

	// History contains configuration for the simplification history store
	// including the SQLite path and retention settings.
	History HistoryConfig `yaml:"history"`

	// Telemetry contains observability configuration: logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ExpressionsConfig contains parser and simplifier settings.
type ExpressionsConfig struct {
	// ConstantFolding enables rule 4 (static evaluation of fully numeric
	// operator nodes). When disabled the simplifier performs pure identity
	// elimination only.
	// Default: true
	ConstantFolding bool `yaml:"constant_folding"`

	// AllowAnyOperator accepts any non-numeric token as an operator instead
	// of rejecting tokens outside {+, -, *, /} at parse time.
	// Default: false
	AllowAnyOperator bool `yaml:"allow_any_operator"`

	// MaxDepth is the maximum expression nesting depth.
	// Default: 512
	MaxDepth int `yaml:"max_depth"`
}

// OutputConfig contains default output settings for the CLI.
type OutputConfig struct {
	// Notation is the default rendering notation: "prefix", "infix", or
	// "postfix".
	// Default: "prefix"
	Notation string `yaml:"notation"`

	// Format is the default output format: "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}

// ServerConfig contains configuration for the HTTP service.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response writes.
	// Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// keep-alive connection.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// during graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	// Default: 1MB
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxBodyBytes limits the size of request bodies.
	// Default: 1MB
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// HistoryConfig contains configuration for the simplification history store.
type HistoryConfig struct {
	// Enabled turns history recording on.
	// Default: false for the CLI, true for the server
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	// Default: "data/history.db"
	Path string `yaml:"path"`

	// MaxOpenConns is the maximum number of open database connections.
	// Default: 10
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle database connections.
	// Default: 5
	MaxIdleConns int `yaml:"max_idle_conns"`

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// RetentionDays is the age beyond which records are pruned. Zero keeps
	// records forever.
	// Default: 30
	RetentionDays int `yaml:"retention_days"`

	// MaxRecords caps the number of stored records; the oldest are pruned
	// first. Zero means no cap.
	// Default: 0
	MaxRecords int64 `yaml:"max_records"`

	// PruneSchedule is a cron expression controlling when retention pruning
	// runs in server mode. Empty disables scheduled pruning.
	// Default: "0 3 * * *" (daily at 3 AM)
	PruneSchedule string `yaml:"prune_schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "json", "text", or "console".
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled turns the /metrics endpoint on in server mode.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "binexpr"
	Namespace string `yaml:"namespace"`

	// Path is the HTTP path for the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`
}
