// Package simplify applies algebraic rewrite rules to expression trees.
//
// Four rules are attempted at each node, in order, first match wins:
//
//  1. Additive identity: x + 0 = x
//  2. Multiplicative identity: x * 1 = x
//  3. Multiplication by zero: x * 0 = 0
//  4. Constant folding: both operands numeric, evaluate statically
//
// The traversal contract is the load-bearing part of this package: children
// are fully simplified before the rules run against a node, so rewrites
// exposed by child simplification are always caught one level up, and a
// single bottom-up pass is sufficient. The individual rules inspect only a
// node's immediate children and never recurse themselves.
//
// Rule 3 is ordered before rule 4 deliberately: both apply to "* 0 5" with
// the same result, but rule 3 also covers a zero operand paired with a
// non-numeric subtree.
//
// Constant folding is on by default and can be disabled with
// WithConstantFolding(false), which reduces the simplifier to pure identity
// elimination. Division folds only when exact; division by a zero leaf is
// reported as ErrorTypeFolding.
//
// Simplification never mutates its input and the result is never larger
// than the input. Simplification is idempotent: simplifying an already
// simplified tree returns an equal tree.
package simplify
