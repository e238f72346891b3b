// Package token defines source positions attached to syntax tree nodes.
package token

// Position points to a particular location in an input string.
type Position struct {
	Char   int    // byte offset within the file
	Line   int    // 0-indexed line number
	Column int    // 0-indexed column number
	File   string // filename
	Known  bool   // set when the position came from real input
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes.
// Used for computing End positions from a start position.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:   p.Char + n,
		Line:   p.Line,
		Column: p.Column + n,
		File:   p.File,
		Known:  p.Known,
	}
}

// IsValid returns true if this position has been set. Known marks
// positions carried in from real input, which keeps a position at the
// very first character (offset zero, line one, column one) valid.
// Synthesized nodes leave the zero value and stay invalid.
func (p Position) IsValid() bool {
	return p.Known || p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}
