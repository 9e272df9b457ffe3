package ast

import "fmt"

// Pos represents the position of a node's token within the input token
// stream. It enables precise error reporting against the original input.
type Pos struct {
	Index int // Zero-based token index
}

// String returns a human-readable representation of the position.
// Format: "token N".
func (p Pos) String() string {
	return fmt.Sprintf("token %d", p.Index)
}
