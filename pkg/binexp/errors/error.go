package errors

import (
	"errors"
	"fmt"
	"strings"

	"treemath/binexpr/pkg/binexp/ast"
)

// ErrorType categorizes the type of error encountered while building,
// rendering, or simplifying an expression tree.
type ErrorType string

const (
	// ErrorTypeMalformedInput is reported when the token stream does not
	// decompose into a well-formed tree: it is exhausted before an operator's
	// operands are found, or tokens remain after the top-level expression.
	ErrorTypeMalformedInput ErrorType = "malformed_input"
	// ErrorTypeInvalidOperator is reported when a non-numeric token is not a
	// supported operator symbol.
	ErrorTypeInvalidOperator ErrorType = "invalid_operator"
	// ErrorTypeFolding is reported when constant folding meets an operation
	// undefined over the integer domain, such as division by zero.
	ErrorTypeFolding ErrorType = "folding"
	// ErrorTypeIO is reported for file read failures in the surrounding tooling.
	ErrorTypeIO ErrorType = "io"
)

// Error represents a rich error with the offending token, its position in
// the input stream, and an optional suggested fix.
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Error message
	Pos        ast.Pos   // Position of the offending token
	Token      string    // The offending token, if any
	Suggestion string    // Suggested fix (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))

	if e.Token != "" {
		sb.WriteString(fmt.Sprintf("\n  --> %q at %s", e.Token, e.Pos))
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}

	return sb.String()
}

// New creates an error with the given type and message.
func New(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates an error with the given type and formatted message.
func Newf(errType ErrorType, format string, args ...interface{}) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

// WithPos attaches the position of the offending token.
func (e *Error) WithPos(pos ast.Pos) *Error {
	e.Pos = pos
	return e
}

// WithToken attaches the offending token.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithSuggestion attaches a suggested fix.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// IsType returns true if err is (or wraps) an *Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// TypeOf returns the ErrorType of err, or "" if err is not an *Error.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ""
}

// ErrorList represents a collection of errors encountered while processing a
// batch of expressions. It allows accumulating multiple errors instead of
// failing on the first one.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(errType ErrorType, message string, pos ast.Pos) {
	el.Add(&Error{
		Type:    errType,
		Message: message,
		Pos:     pos,
	})
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface.
// It returns all errors formatted as a single string.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("Error %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// HasErrorType returns true if the list contains at least one error of the
// given type.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}
