package ast

// Visitor provides an interface for traversing an expression tree.
// Implement this interface to perform operations on tree nodes
// (analysis, metrics collection, transformation staging, etc.).
type Visitor interface {
	VisitLeaf(*Node) error
	VisitOperator(*Node) error
}

// Walk traverses the tree rooted at n in pre-order (node, left, right) and
// calls the visitor for each node. It returns the first error encountered,
// or nil if traversal completes. Pre-order matches the order in which the
// parser consumed the nodes' tokens.
func Walk(n *Node, visitor Visitor) error {
	if n == nil {
		return nil
	}
	if n.Kind == KindLeaf {
		return visitor.VisitLeaf(n)
	}
	if err := visitor.VisitOperator(n); err != nil {
		return err
	}
	if err := Walk(n.Left, visitor); err != nil {
		return err
	}
	return Walk(n.Right, visitor)
}

// Inspect traverses the tree in pre-order calling f for each node. If f
// returns false for an operator node, its children are skipped.
func Inspect(n *Node, f func(*Node) bool) {
	if n == nil {
		return
	}
	if !f(n) || n.Kind == KindLeaf {
		return
	}
	Inspect(n.Left, f)
	Inspect(n.Right, f)
}

// CountLeaves returns the number of leaf nodes in the tree rooted at n.
func CountLeaves(n *Node) int {
	count := 0
	Inspect(n, func(node *Node) bool {
		if node.Kind == KindLeaf {
			count++
		}
		return true
	})
	return count
}
