// Package ast provides the binary expression tree node definitions used by
// the binexpr parser, renderer, and simplifier.
//
// A tree is built from Node values of two kinds: KindLeaf holds a numeric
// literal, KindOperator holds one of the supported binary operator symbols
// (+, -, *, /) and exactly two children. Every node records the index of the
// token it was built from, so errors detected later can point back into the
// original input stream.
//
// # Core Types
//
// Node: a leaf or binary operator node; the tree is the recursive closure of
// Node over Left/Right
//
// NodeKind: leaf or operator discriminator
//
// Operator: operator symbol with the closed supported set
//
// Pos: token index of a node in the input stream
//
// # Basic Usage
//
// Build a tree directly:
//
//	tree := ast.NewOperator(ast.OperatorAdd,
//	    ast.NewLeaf("1"),
//	    ast.NewLeaf("2"),
//	)
//
// Traverse with the visitor pattern:
//
//	type leafCounter struct{ n int }
//
//	func (c *leafCounter) VisitLeaf(*ast.Node) error     { c.n++; return nil }
//	func (c *leafCounter) VisitOperator(*ast.Node) error { return nil }
//
//	counter := &leafCounter{}
//	if err := ast.Walk(tree, counter); err != nil {
//	    log.Fatal(err)
//	}
//
// Nodes are compared structurally with Equal and duplicated with Clone; a
// node exclusively owns its children, so a cloned tree shares nothing with
// its original.
package ast
