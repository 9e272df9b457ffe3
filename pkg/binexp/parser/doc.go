// Package parser builds binary expression trees from prefix-notation token
// streams.
//
// Input is an ordered sequence of whitespace-delimited tokens where each
// token is either a numeric literal or a single operator symbol. The parser
// is a prefix-order recursive descent over an explicit cursor: tokens are
// consumed left to right with no lookahead, mirroring a pre-order traversal
// of the resulting tree.
//
// # Failure modes
//
// A stream that runs out before an operator has two operands, or that has
// tokens left over after the top-level expression, fails with
// ErrorTypeMalformedInput. Under the default strict policy a non-numeric
// token outside {+, -, *, /} fails with ErrorTypeInvalidOperator; configure
// WithAnyOperator(true) to accept arbitrary operator symbols and defer their
// interpretation to downstream consumers.
//
// # Usage
//
//	tree, err := parser.NewParser().ParseString("+ 1 * 2 0")
//	if err != nil {
//	    log.Fatal(err)
//	}
package parser
