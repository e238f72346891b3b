package certify

import (
	"testing"

	"github.com/HyperLuna/jexpr/ast"
	"github.com/stretchr/testify/require"
)

func TestScanPatternPlainName(t *testing.T) {
	var scope []string
	err := scanPattern(ident("a"), &scope)
	require.Nil(t, err)
	require.Equal(t, []string{"a"}, scope)
}

func TestScanPatternNestedDestructuring(t *testing.T) {
	// {a: {a: [, a], ...c}, c: b = 2} binds a, c, b in that order
	pattern := &ast.ObjectPattern{Props: []ast.Expr{
		&ast.Property{
			Key: ident("a"),
			Value: &ast.ObjectPattern{Props: []ast.Expr{
				&ast.Property{
					Key:   ident("a"),
					Value: &ast.ArrayPattern{Elts: []ast.Expr{nil, ident("a")}},
				},
				&ast.Rest{Target: ident("c")},
			}},
		},
		&ast.Property{
			Key:   ident("c"),
			Value: &ast.Default{Target: ident("b"), Value: num(2, "2")},
		},
	}}

	var scope []string
	err := scanPattern(pattern, &scope)
	require.Nil(t, err)
	require.Equal(t, []string{"a", "c", "b"}, scope)
}

func TestScanPatternRestParameter(t *testing.T) {
	var scope []string
	err := scanPattern(&ast.Rest{Target: &ast.ArrayPattern{
		Elts: []ast.Expr{ident("x"), ident("y")},
	}}, &scope)
	require.Nil(t, err)
	require.Equal(t, []string{"x", "y"}, scope)
}

func TestScanPatternDefaultSkipsValue(t *testing.T) {
	// The default expression is not a binding site
	var scope []string
	err := scanPattern(&ast.Default{
		Target: ident("a"),
		Value:  ident("fallback"),
	}, &scope)
	require.Nil(t, err)
	require.Equal(t, []string{"a"}, scope)
}

func TestScanPatternKeyNotBound(t *testing.T) {
	// In {k: v} only v is bound; the key is a fixed name
	var scope []string
	err := scanPattern(&ast.ObjectPattern{Props: []ast.Expr{
		&ast.Property{Key: ident("k"), Value: ident("v")},
	}}, &scope)
	require.Nil(t, err)
	require.Equal(t, []string{"v"}, scope)
}

func TestScanPatternRejectsNonPattern(t *testing.T) {
	var scope []string
	err := scanPattern(num(1, "1"), &scope)
	require.NotNil(t, err)
	require.Equal(t, ErrPattern, err.Kind)
	require.Equal(t, "Literal", err.NodeType)
}

func TestValidIdent(t *testing.T) {
	valid := []string{"a", "_", "$", "aB3", "_private", "$el", "π"}
	for _, name := range valid {
		require.True(t, validIdent(name), "expected %q to be valid", name)
	}
	invalid := []string{"", "1a", "a-b", "a b", "for", "this", "null", "new"}
	for _, name := range invalid {
		require.False(t, validIdent(name), "expected %q to be invalid", name)
	}
}
