// Package errors provides the error taxonomy for expression processing.
//
// Every failure surfaced by the parser and simplifier is an *Error carrying
// a category, the offending token, and its position in the input stream, so
// callers can report exactly which token of which expression went wrong.
//
// # Error Types
//
// ErrorTypeMalformedInput: the token stream does not decompose into a
// well-formed tree (exhausted early, or trailing tokens remain)
//
// ErrorTypeInvalidOperator: a non-numeric token is not a supported operator
//
// ErrorTypeFolding: constant folding hit an undefined operation (division by
// zero)
//
// ErrorTypeIO: file access failure in the surrounding tooling
//
// None of these are fatal: a caller may log a failed expression and continue
// with the rest of a batch, accumulating failures in an ErrorList. Parsing
// and simplification are deterministic, so there are no retry semantics.
//
// # Usage
//
//	tree, err := parser.NewParser().ParseString(input)
//	if binexperrors.IsType(err, binexperrors.ErrorTypeMalformedInput) {
//	    // skip this expression, keep processing the batch
//	}
package errors
