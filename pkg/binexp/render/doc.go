// Package render converts expression trees to their string forms.
//
// Three notations are supported: prefix (operator first), postfix (operator
// last), and infix with a single pair of parentheses around every operator
// subexpression. Rendering is a pure function over the tree: it never
// mutates its input and always succeeds for a well-formed tree.
//
// The prefix form round-trips: tokenizing Prefix(t) and parsing the result
// yields a tree structurally equal to t.
package render
