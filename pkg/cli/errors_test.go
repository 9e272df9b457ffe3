package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"usage", NewUsageError("missing argument"), ExitUsage},
		{"wrapped usage", fmt.Errorf("run: %w", NewUsageError("bad flag")), ExitUsage},
		{"input", &InputError{Failed: 1, Total: 3}, ExitInvalidInput},
		{"generic", errors.New("disk full"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInputError_Message(t *testing.T) {
	err := &InputError{Failed: 2, Total: 5}
	want := "2 of 5 expressions failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
