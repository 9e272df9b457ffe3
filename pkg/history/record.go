package history

import "time"

// Record captures one processed expression: what came in, what the
// simplifier produced, and how much work it took.
type Record struct {
	// ID is a unique identifier for the record (UUID).
	ID string `json:"id"`

	// Source identifies what produced the record ("cli", "server").
	Source string `json:"source"`

	// Input is the original expression in prefix notation.
	Input string `json:"input"`

	// Simplified is the simplified expression in prefix notation.
	Simplified string `json:"simplified"`

	// InputNodes and OutputNodes are the tree sizes before and after.
	InputNodes  int `json:"input_nodes"`
	OutputNodes int `json:"output_nodes"`

	// Folding reports whether constant folding was enabled for this run.
	Folding bool `json:"folding"`

	// RulesApplied is the number of rewrite rule firings.
	RulesApplied int `json:"rules_applied"`

	// Duration is the time the parse-and-simplify run took.
	Duration time.Duration `json:"duration"`

	// CreatedAt is when the record was stored.
	CreatedAt time.Time `json:"created_at"`
}

// NodesRemoved returns the number of tree nodes eliminated by simplification.
func (r *Record) NodesRemoved() int {
	return r.InputNodes - r.OutputNodes
}

// Filter narrows a history query.
type Filter struct {
	// Since and Until bound CreatedAt; zero values are unbounded.
	Since time.Time
	Until time.Time

	// Source restricts to records from one producer; empty matches all.
	Source string

	// Limit caps the number of returned records; zero means no cap.
	Limit int
}
