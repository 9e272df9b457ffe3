package binexp

import (
	"treemath/binexpr/pkg/binexp/ast"
	"treemath/binexpr/pkg/binexp/parser"
	"treemath/binexpr/pkg/binexp/render"
	"treemath/binexpr/pkg/binexp/simplify"
)

// Parse builds an expression tree from prefix-ordered tokens using the
// default strict parser.
func Parse(tokens []string) (*ast.Node, error) {
	return parser.NewParser().Parse(tokens)
}

// ParseString splits s on whitespace and parses the resulting tokens.
func ParseString(s string) (*ast.Node, error) {
	return parser.NewParser().ParseString(s)
}

// Simplify rewrites tree with the full rule set, constant folding included.
func Simplify(tree *ast.Node) (*ast.Node, error) {
	return simplify.NewSimplifier().Simplify(tree)
}

// ParseAndSimplify is a convenience function that parses a prefix expression
// string and simplifies the resulting tree. It returns the simplified tree,
// or an error if parsing or simplification fails.
func ParseAndSimplify(s string) (*ast.Node, error) {
	tree, err := ParseString(s)
	if err != nil {
		return nil, err
	}
	return Simplify(tree)
}

// SimplifyToPrefix parses, simplifies, and renders back to prefix notation.
func SimplifyToPrefix(s string) (string, error) {
	tree, err := ParseAndSimplify(s)
	if err != nil {
		return "", err
	}
	return render.Prefix(tree), nil
}
