package simplify

import (
	"treemath/binexpr/pkg/binexp/ast"
	binexperrors "treemath/binexpr/pkg/binexp/errors"
)

// Rule identifies an algebraic rewrite rule, in the order rules are
// attempted at each node.
type Rule string

const (
	// RuleAdditiveIdentity rewrites x + 0 and 0 + x to x.
	RuleAdditiveIdentity Rule = "additive_identity"
	// RuleMultiplicativeIdentity rewrites x * 1 and 1 * x to x.
	RuleMultiplicativeIdentity Rule = "multiplicative_identity"
	// RuleMultiplyByZero rewrites x * 0 and 0 * x to 0.
	RuleMultiplyByZero Rule = "multiply_by_zero"
	// RuleConstantFold evaluates an operator over two numeric leaves.
	RuleConstantFold Rule = "constant_fold"
)

// Simplifier rewrites expression trees into semantically equivalent trees
// that are no larger.
//
// Simplification is bottom-up by contract, not by accident: at every node the
// children are fully simplified first, and only then is the rule set applied
// to the node itself. The node-local rules never recurse. This ordering is
// what lets identities exposed by child rewrites (an inner "+ 2 0" collapsing
// to "2", say) feed the rule applied one level up, and it is why a single
// pass suffices with no fixpoint loop.
type Simplifier struct {
	fold     bool       // Apply constant folding (rule 4)
	observer func(Rule) // Called once per rule application, if set
}

// NewSimplifier creates a simplifier with constant folding enabled.
func NewSimplifier() *Simplifier {
	return &Simplifier{fold: true}
}

// WithConstantFolding controls whether rule 4 (constant folding) is applied.
// With folding disabled the simplifier performs pure identity elimination:
// "+ 1 2" stays "+ 1 2" instead of folding to "3".
func (s *Simplifier) WithConstantFolding(fold bool) *Simplifier {
	s.fold = fold
	return s
}

// WithRuleObserver registers a callback invoked once for every rule
// application. Used by the CLI and server to feed metrics.
func (s *Simplifier) WithRuleObserver(observer func(Rule)) *Simplifier {
	s.observer = observer
	return s
}

// Simplify returns a simplified tree semantically equivalent to n. The input
// tree is never mutated; the result may share subtrees with fresh nodes but
// n itself remains valid and unchanged.
//
// The only error condition is ErrorTypeFolding when folding is enabled and a
// division by a zero-valued leaf is encountered.
func (s *Simplifier) Simplify(n *ast.Node) (*ast.Node, error) {
	if n == nil {
		return nil, nil
	}

	// Base case: a bare leaf simplifies to itself.
	if n.IsLeaf() {
		return n.Clone(), nil
	}

	// Children first, always.
	left, err := s.Simplify(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := s.Simplify(n.Right)
	if err != nil {
		return nil, err
	}

	node := &ast.Node{
		Kind:  ast.KindOperator,
		Value: n.Value,
		Left:  left,
		Right: right,
		Pos:   n.Pos,
	}

	return s.applyRules(node)
}

// applyRules attempts the rule set against a node whose children are already
// fully simplified. Rules are tried in order and the first match wins; at
// most one rule fires per node.
func (s *Simplifier) applyRules(n *ast.Node) (*ast.Node, error) {
	if out, ok := s.additiveIdentity(n); ok {
		s.fired(RuleAdditiveIdentity)
		return out, nil
	}
	if out, ok := s.multiplicativeIdentity(n); ok {
		s.fired(RuleMultiplicativeIdentity)
		return out, nil
	}
	if out, ok := s.multiplyByZero(n); ok {
		s.fired(RuleMultiplyByZero)
		return out, nil
	}
	if s.fold {
		out, ok, err := s.constantFold(n)
		if err != nil {
			return nil, err
		}
		if ok {
			s.fired(RuleConstantFold)
			return out, nil
		}
	}
	return n, nil
}

// additiveIdentity applies x + 0 = x. It inspects only the node's immediate
// children and does not recurse.
func (s *Simplifier) additiveIdentity(n *ast.Node) (*ast.Node, bool) {
	if n.Operator() != ast.OperatorAdd {
		return nil, false
	}
	if n.Left.IsLeafValue(0) {
		return n.Right, true
	}
	if n.Right.IsLeafValue(0) {
		return n.Left, true
	}
	return nil, false
}

// multiplicativeIdentity applies x * 1 = x.
func (s *Simplifier) multiplicativeIdentity(n *ast.Node) (*ast.Node, bool) {
	if n.Operator() != ast.OperatorMultiply {
		return nil, false
	}
	if n.Left.IsLeafValue(1) {
		return n.Right, true
	}
	if n.Right.IsLeafValue(1) {
		return n.Left, true
	}
	return nil, false
}

// multiplyByZero applies x * 0 = 0, producing a fresh zero leaf. It runs
// before constant folding so that it also covers the case where the other
// operand is not numeric.
func (s *Simplifier) multiplyByZero(n *ast.Node) (*ast.Node, bool) {
	if n.Operator() != ast.OperatorMultiply {
		return nil, false
	}
	if n.Left.IsLeafValue(0) || n.Right.IsLeafValue(0) {
		return ast.NewLeafInt(0), true
	}
	return nil, false
}

// constantFold statically evaluates an operator whose operands are both
// numeric leaves, producing a fresh leaf with the computed value. Folding is
// skipped (not an error) when either operand is non-numeric, when the
// operator is outside the supported set, or when a division is not exact.
// Division by a zero leaf is a folding failure.
func (s *Simplifier) constantFold(n *ast.Node) (*ast.Node, bool, error) {
	left, ok := n.Left.NumericValue()
	if !ok {
		return nil, false, nil
	}
	right, ok := n.Right.NumericValue()
	if !ok {
		return nil, false, nil
	}

	switch n.Operator() {
	case ast.OperatorAdd:
		return ast.NewLeafInt(left + right), true, nil
	case ast.OperatorSubtract:
		return ast.NewLeafInt(left - right), true, nil
	case ast.OperatorMultiply:
		return ast.NewLeafInt(left * right), true, nil
	case ast.OperatorDivide:
		if right == 0 {
			return nil, false, binexperrors.Newf(
				binexperrors.ErrorTypeFolding,
				"division by zero folding %q", ast.Operator(n.Value),
			).WithPos(n.Pos).WithToken(n.Value)
		}
		if left%right != 0 {
			// Inexact quotient: the integer domain cannot represent it,
			// leave the node unfolded.
			return nil, false, nil
		}
		return ast.NewLeafInt(left / right), true, nil
	}

	// Passthrough operator from a permissive parse.
	return nil, false, nil
}

func (s *Simplifier) fired(rule Rule) {
	if s.observer != nil {
		s.observer(rule)
	}
}
