package cli

import (
	"errors"
	"fmt"
)

// Process exit codes used by the binexpr commands.
const (
	// ExitOK means all inputs processed successfully.
	ExitOK = 0
	// ExitFailure means an operational failure (I/O, config, server).
	ExitFailure = 1
	// ExitUsage means the command was invoked incorrectly.
	ExitUsage = 2
	// ExitInvalidInput means one or more expressions failed to parse or
	// simplify.
	ExitInvalidInput = 3
)

// UsageError represents incorrect command invocation, such as conflicting
// flags or a missing argument.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a UsageError.
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// InputError represents one or more expressions that failed processing.
// It carries the count so callers can summarize without re-walking results.
type InputError struct {
	Failed int
	Total  int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%d of %d expressions failed", e.Failed, e.Total)
}

// ExitCode maps an error to the process exit code for that failure class.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return ExitInvalidInput
	}

	return ExitFailure
}
