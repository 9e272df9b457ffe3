// Package cli provides shared helpers for the binexpr command-line tool:
// output formatting, command error types with exit codes, and signal-aware
// context setup.
package cli
