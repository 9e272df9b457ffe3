// Binexpr is a toolkit for binary expression trees written in prefix
// notation.
//
// It parses whitespace-separated prefix expressions into trees, rewrites
// them with algebraic simplification rules (additive identity,
// multiplicative identity, multiplication by zero, constant folding), and
// renders the result in prefix, infix, or postfix notation.
//
// Usage:
//
//	# Simplify an expression
//	binexpr simplify "* 1 + 0 5"
//
//	# Simplify without constant folding, rendering as infix
//	binexpr simplify --no-fold --notation infix "+ 1 + 2 0"
//
//	# Re-simplify a file of expressions on every change
//	binexpr simplify --file exprs.txt --watch
//
//	# Validate expression files for CI
//	binexpr check --dir expressions/ --format json
//
//	# Run the HTTP service
//	binexpr serve --config config.yaml
//
//	# Show version information
//	binexpr version
package main

func main() {
	Execute()
}
