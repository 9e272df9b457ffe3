// Package binexp is the entry point for the binexpr expression core: it ties
// together the parser, renderer, and simplifier behind a handful of
// convenience functions.
//
// The core operates on prefix-notation arithmetic over binary operators and
// numeric leaves. A tree is built from a whitespace-delimited token stream,
// can be rendered in prefix, infix, or postfix notation, and can be rewritten
// by a small set of algebraic rules (additive identity, multiplicative
// identity, multiplication by zero, constant folding) into an equivalent,
// no-larger tree.
//
// # Subpackages
//
// ast: tree node definitions, structural equality, visitor traversal
//
// parser: prefix recursive descent over a token cursor
//
// render: prefix/infix/postfix string forms and a debug tree dump
//
// simplify: the bottom-up rule engine
//
// errors: the shared error taxonomy (malformed input, invalid operator,
// folding failure)
//
// # Basic Usage
//
//	out, err := binexp.SimplifyToPrefix("+ 1 * 0 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // "1"
//
// For control over the operator policy or folding behavior, use the
// subpackages directly:
//
//	tree, err := parser.NewParser().WithAnyOperator(true).ParseString("@ 1 2")
//	...
//	simplified, err := simplify.NewSimplifier().WithConstantFolding(false).Simplify(tree)
//
// All operations are synchronous pure functions over an owned tree; trees
// are independent, so distinct expressions may be processed concurrently
// without coordination.
package binexp
