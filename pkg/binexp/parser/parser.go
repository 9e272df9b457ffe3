package parser

import (
	"strings"

	"treemath/binexpr/pkg/binexp/ast"
	binexperrors "treemath/binexpr/pkg/binexp/errors"
)

// DefaultMaxDepth is the default maximum expression nesting depth.
const DefaultMaxDepth = 512

// Parser builds binary expression trees from prefix-ordered token streams.
//
// The token stream is consumed strictly left to right with no lookahead: the
// first token becomes the root, and for an operator token the left subtree is
// built from the immediately following tokens, then the right subtree from
// the tokens remaining after that. This is exactly the order nodes appear in
// a pre-order traversal, so a tree rendered back to prefix notation and
// re-tokenized parses to an equal tree.
type Parser struct {
	// Configuration
	maxDepth         int  // Maximum nesting depth (default: DefaultMaxDepth)
	allowAnyOperator bool // Accept any non-numeric token as an operator
}

// NewParser creates a new parser with default configuration: nesting limited
// to DefaultMaxDepth and operators restricted to the supported set.
func NewParser() *Parser {
	return &Parser{
		maxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth sets the maximum expression nesting depth.
func (p *Parser) WithMaxDepth(depth int) *Parser {
	p.maxDepth = depth
	return p
}

// WithAnyOperator controls the operator policy. When false (the default) a
// non-numeric token outside the supported set {+, -, *, /} is rejected at
// build time with ErrorTypeInvalidOperator. When true, any non-numeric token
// is accepted as an operator and passed through unmodified; the simplifier
// leaves unknown operators untouched.
func (p *Parser) WithAnyOperator(allow bool) *Parser {
	p.allowAnyOperator = allow
	return p
}

// Parse builds an expression tree from the given prefix-ordered tokens.
// It returns ErrorTypeMalformedInput if the stream is exhausted before a
// required operand is found or if tokens remain after the top-level
// expression, and ErrorTypeInvalidOperator for an unrecognized token under
// the strict operator policy. The token slice is not modified.
func (p *Parser) Parse(tokens []string) (*ast.Node, error) {
	if len(tokens) == 0 {
		return nil, binexperrors.New(
			binexperrors.ErrorTypeMalformedInput,
			"empty token stream",
		).WithSuggestion("provide a prefix expression, e.g. \"+ 1 2\"")
	}

	c := &cursor{tokens: tokens}
	node, err := p.build(c, 0)
	if err != nil {
		return nil, err
	}

	// A well-formed expression consumes the whole stream.
	if !c.exhausted() {
		tok, pos := c.peek()
		return nil, binexperrors.Newf(
			binexperrors.ErrorTypeMalformedInput,
			"%d trailing token(s) after expression", c.remaining(),
		).WithToken(tok).WithPos(pos).
			WithSuggestion("remove the extra tokens or wrap them under another operator")
	}

	return node, nil
}

// ParseString splits s on whitespace and parses the resulting tokens.
func (p *Parser) ParseString(s string) (*ast.Node, error) {
	return p.Parse(strings.Fields(s))
}

// build constructs one subtree from the cursor's current position.
func (p *Parser) build(c *cursor, depth int) (*ast.Node, error) {
	if depth > p.maxDepth {
		return nil, binexperrors.Newf(
			binexperrors.ErrorTypeMalformedInput,
			"expression nesting exceeds maximum depth %d", p.maxDepth,
		)
	}

	tok, pos, ok := c.next()
	if !ok {
		return nil, binexperrors.New(
			binexperrors.ErrorTypeMalformedInput,
			"token stream exhausted while an operand was still expected",
		).WithPos(pos).
			WithSuggestion("every operator needs exactly two operands")
	}

	if ast.IsNumeric(tok) {
		leaf := ast.NewLeaf(tok)
		leaf.Pos = pos
		return leaf, nil
	}

	if !p.allowAnyOperator && !ast.IsSupportedOperator(tok) {
		return nil, binexperrors.Newf(
			binexperrors.ErrorTypeInvalidOperator,
			"unrecognized operator %q", tok,
		).WithToken(tok).WithPos(pos).
			WithSuggestion("supported operators are +, -, *, /")
	}

	left, err := p.build(c, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := p.build(c, depth+1)
	if err != nil {
		return nil, err
	}

	node := ast.NewOperator(ast.Operator(tok), left, right)
	node.Pos = pos
	return node, nil
}

// cursor is an explicit index into an immutable token slice. It models the
// pop-front consumption of the input without mutating it.
type cursor struct {
	tokens []string
	index  int
}

// next returns the current token and its position and advances the cursor.
func (c *cursor) next() (string, ast.Pos, bool) {
	if c.index >= len(c.tokens) {
		return "", ast.Pos{Index: c.index}, false
	}
	tok := c.tokens[c.index]
	pos := ast.Pos{Index: c.index}
	c.index++
	return tok, pos, true
}

// peek returns the current token and position without advancing.
func (c *cursor) peek() (string, ast.Pos) {
	if c.index >= len(c.tokens) {
		return "", ast.Pos{Index: c.index}
	}
	return c.tokens[c.index], ast.Pos{Index: c.index}
}

// exhausted returns true if every token has been consumed.
func (c *cursor) exhausted() bool {
	return c.index >= len(c.tokens)
}

// remaining returns the number of unconsumed tokens.
func (c *cursor) remaining() int {
	return len(c.tokens) - c.index
}
