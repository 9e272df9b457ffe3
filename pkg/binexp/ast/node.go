package ast

import "strconv"

// NodeKind represents the kind of node in a binary expression tree.
type NodeKind string

const (
	// KindLeaf is a numeric literal with no children.
	KindLeaf NodeKind = "leaf"
	// KindOperator is a binary operator with exactly two children.
	KindOperator NodeKind = "operator"
)

// Operator represents a binary operator symbol.
type Operator string

const (
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
	OperatorMultiply Operator = "*"
	OperatorDivide   Operator = "/"
)

// SupportedOperators is the closed set of operators the parser accepts by
// default. Operators outside this set are rejected at build time unless the
// parser is configured to pass them through.
var SupportedOperators = map[Operator]bool{
	OperatorAdd:      true,
	OperatorSubtract: true,
	OperatorMultiply: true,
	OperatorDivide:   true,
}

// IsSupportedOperator returns true if sym is one of the supported operator symbols.
func IsSupportedOperator(sym string) bool {
	return SupportedOperators[Operator(sym)]
}

// IsNumeric returns true if tok is a numeric literal token: an optional
// leading minus sign followed by one or more decimal digits. The minus form
// never appears in source input (the input grammar has no negative literals)
// but is produced by constant folding, and accepting it keeps rendered trees
// re-parseable.
func IsNumeric(tok string) bool {
	if tok == "" || tok == "-" {
		return false
	}
	digits := tok
	if tok[0] == '-' {
		digits = tok[1:]
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// Node is a node in a binary expression tree.
//
// A leaf node holds a numeric literal in Value and has nil children. An
// operator node holds the operator symbol in Value and always has exactly two
// non-nil children; a partially populated operator node is never constructed.
// Each node exclusively owns its subtree: trees are acyclic and share no
// substructure, so subtrees can be moved or replaced freely.
type Node struct {
	Kind  NodeKind // Kind of node (leaf or operator)
	Value string   // Numeric literal (leaf) or operator symbol (operator)
	Left  *Node    // Left operand (operator nodes only)
	Right *Node    // Right operand (operator nodes only)
	Pos   Pos      // Position of the node's token in the input stream
}

// NewLeaf creates a leaf node holding the given numeric literal.
func NewLeaf(value string) *Node {
	return &Node{Kind: KindLeaf, Value: value}
}

// NewLeafInt creates a leaf node holding the decimal form of v.
func NewLeafInt(v int64) *Node {
	return &Node{Kind: KindLeaf, Value: strconv.FormatInt(v, 10)}
}

// NewOperator creates an operator node with the given symbol and operands.
// It returns nil if either operand is nil: an operator node must have exactly
// two children.
func NewOperator(op Operator, left, right *Node) *Node {
	if left == nil || right == nil {
		return nil
	}
	return &Node{Kind: KindOperator, Value: string(op), Left: left, Right: right}
}

// IsLeaf returns true if this node is a numeric leaf.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// IsOperator returns true if this node is a binary operator.
func (n *Node) IsOperator() bool {
	return n.Kind == KindOperator
}

// Operator returns the node's operator symbol, or "" for a leaf.
func (n *Node) Operator() Operator {
	if n.Kind != KindOperator {
		return ""
	}
	return Operator(n.Value)
}

// NumericValue returns the node's value as an integer. The second return
// value is false if the node is not a leaf or its value does not parse.
func (n *Node) NumericValue() (int64, bool) {
	if n == nil || n.Kind != KindLeaf {
		return 0, false
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsLeafValue returns true if this node is a leaf holding exactly v.
func (n *Node) IsLeafValue(v int64) bool {
	got, ok := n.NumericValue()
	return ok && got == v
}

// Equal reports structural equality: same kind, same value, and recursively
// equal children. Positions are ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Value != other.Value {
		return false
	}
	if n.Kind == KindLeaf {
		return true
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Value: n.Value, Pos: n.Pos}
	if n.Kind == KindOperator {
		c.Left = n.Left.Clone()
		c.Right = n.Right.Clone()
	}
	return c
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	if n.Kind == KindLeaf {
		return 1
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// Depth returns the height of the tree rooted at n. A single leaf has depth 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	if n.Kind == KindLeaf {
		return 1
	}
	left := n.Left.Depth()
	right := n.Right.Depth()
	if left > right {
		return 1 + left
	}
	return 1 + right
}
