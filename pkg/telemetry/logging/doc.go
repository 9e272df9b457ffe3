// Package logging configures structured logging for binexpr.
//
// Logging is built on log/slog. The package translates the telemetry
// configuration into a handler (JSON, logfmt text, or console text without
// timestamps), installs it as the process default, and hands out
// component-scoped child loggers so every record carries a "component"
// attribute.
package logging
