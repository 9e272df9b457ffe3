package render

import (
	"fmt"
	"strings"

	"treemath/binexpr/pkg/binexp/ast"
)

// Notation represents an output notation for an expression tree.
type Notation string

const (
	// NotationPrefix renders operator first: "+ 1 2".
	NotationPrefix Notation = "prefix"
	// NotationInfix renders operator between operands, fully parenthesized: "(1 + 2)".
	NotationInfix Notation = "infix"
	// NotationPostfix renders operator last: "1 2 +".
	NotationPostfix Notation = "postfix"
)

// ParseNotation returns the Notation for a user-supplied name.
func ParseNotation(name string) (Notation, error) {
	switch Notation(strings.ToLower(name)) {
	case NotationPrefix:
		return NotationPrefix, nil
	case NotationInfix:
		return NotationInfix, nil
	case NotationPostfix:
		return NotationPostfix, nil
	}
	return "", fmt.Errorf("unknown notation %q (want prefix, infix, or postfix)", name)
}

// Render returns the string form of the tree in the given notation.
// Rendering a well-formed tree always succeeds; the only error is an
// unknown notation value.
func Render(n *ast.Node, notation Notation) (string, error) {
	switch notation {
	case NotationPrefix:
		return Prefix(n), nil
	case NotationInfix:
		return Infix(n), nil
	case NotationPostfix:
		return Postfix(n), nil
	}
	return "", fmt.Errorf("unknown notation %q", notation)
}

// Prefix returns the prefix (operator-first) form of the tree. The output
// re-tokenizes and parses back to a structurally equal tree.
func Prefix(n *ast.Node) string {
	if n.IsLeaf() {
		return n.Value
	}
	return n.Value + " " + Prefix(n.Left) + " " + Prefix(n.Right)
}

// Infix returns the infix form of the tree. Every operator subexpression is
// wrapped in exactly one pair of parentheses regardless of precedence, so
// the output is unambiguous without precedence rules.
func Infix(n *ast.Node) string {
	if n.IsLeaf() {
		return n.Value
	}
	return "(" + Infix(n.Left) + " " + n.Value + " " + Infix(n.Right) + ")"
}

// Postfix returns the postfix (operator-last) form of the tree.
func Postfix(n *ast.Node) string {
	if n.IsLeaf() {
		return n.Value
	}
	return Postfix(n.Left) + " " + Postfix(n.Right) + " " + n.Value
}

// Dump returns a multi-line representation of the tree where indentation
// indicates parent/child relationships. Intended for debugging output.
func Dump(n *ast.Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *ast.Node, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Value)
	if n.IsOperator() {
		sb.WriteString("\n")
		dump(sb, n.Left, indent+1)
		sb.WriteString("\n")
		dump(sb, n.Right, indent+1)
	}
}
