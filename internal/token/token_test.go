package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	pos := Position{Line: 2, Column: 0}
	// Switches to 1-indexed
	require.Equal(t, 3, pos.LineNumber())
	require.Equal(t, 1, pos.ColumnNumber())
}

func TestAdvance(t *testing.T) {
	pos := Position{Char: 10, Line: 1, Column: 4, File: "expr.js"}
	next := pos.Advance(3)
	require.Equal(t, 13, next.Char)
	require.Equal(t, 1, next.Line)
	require.Equal(t, 7, next.Column)
	require.Equal(t, "expr.js", next.File)
}

func TestIsValid(t *testing.T) {
	require.False(t, NoPos.IsValid())
	require.True(t, Position{Line: 1}.IsValid())
	require.True(t, Position{File: "expr.js"}.IsValid())
}

func TestIsValidAtStartOfInput(t *testing.T) {
	// The first character of the input sits at offset zero on line one,
	// column one; only the Known marker distinguishes it from an unset
	// position.
	first := Position{Known: true}
	require.True(t, first.IsValid())
	require.Equal(t, 1, first.LineNumber())
	require.Equal(t, 1, first.ColumnNumber())
	require.True(t, first.Advance(2).IsValid())
}
