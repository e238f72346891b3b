package ast

import (
	"testing"
)

func TestWalk(t *testing.T) {
	// Build: a + b[0]
	expr := &Binary{
		X:  &Ident{Name: "a"},
		Op: "+",
		Y: &Member{
			X:        &Ident{Name: "b"},
			Prop:     &Literal{Value: float64(0), Raw: "0"},
			Computed: true,
		},
	}

	var visited []string
	Inspect(expr, func(n Node) bool {
		visited = append(visited, Type(n))
		return true
	})

	expected := []string{
		"BinaryExpression", "Identifier", "MemberExpression",
		"Identifier", "Literal",
	}
	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, got %d: %v", len(expected), len(visited), visited)
	}
	for i, v := range expected {
		if visited[i] != v {
			t.Errorf("expected %q at index %d, got %q", v, i, visited[i])
		}
	}
}

func TestWalkArrow(t *testing.T) {
	// Build: ({a = 1}) => a
	expr := &Arrow{
		Params: []Expr{
			&ObjectPattern{
				Props: []Expr{
					&Property{
						Key: &Ident{Name: "a"},
						Value: &Default{
							Target: &Ident{Name: "a"},
							Value:  &Literal{Value: float64(1), Raw: "1"},
						},
						Shorthand: true,
					},
				},
			},
		},
		Body: &Ident{Name: "a"},
	}

	count := map[string]int{}
	Inspect(expr, func(n Node) bool {
		count[Type(n)]++
		return true
	})

	if count["ArrowFunctionExpression"] != 1 {
		t.Errorf("expected 1 arrow, got %d", count["ArrowFunctionExpression"])
	}
	if count["AssignmentPattern"] != 1 {
		t.Errorf("expected 1 assignment pattern, got %d", count["AssignmentPattern"])
	}
	// Key ident, default target ident, body ident
	if count["Identifier"] != 3 {
		t.Errorf("expected 3 identifiers, got %d", count["Identifier"])
	}
}

func TestWalkPrune(t *testing.T) {
	// Skip children of the member expression
	expr := &Binary{
		X:  &Member{X: &Ident{Name: "a"}, Prop: &Ident{Name: "b"}},
		Op: "+",
		Y:  &Ident{Name: "c"},
	}

	var idents []string
	Inspect(expr, func(n Node) bool {
		switch node := n.(type) {
		case *Member:
			return false
		case *Ident:
			idents = append(idents, node.Name)
		}
		return true
	})

	if len(idents) != 1 || idents[0] != "c" {
		t.Errorf("expected only %q visited, got %v", "c", idents)
	}
}

func TestPreorder(t *testing.T) {
	expr := &Cond{
		Test: &Ident{Name: "ok"},
		Then: &Literal{Value: float64(1), Raw: "1"},
		Else: &Literal{Value: float64(2), Raw: "2"},
	}

	var types []string
	for n := range Preorder(expr) {
		types = append(types, Type(n))
	}
	expected := []string{"ConditionalExpression", "Identifier", "Literal", "Literal"}
	if len(types) != len(expected) {
		t.Fatalf("expected %d nodes, got %d: %v", len(expected), len(types), types)
	}
	for i, v := range expected {
		if types[i] != v {
			t.Errorf("expected %q at index %d, got %q", v, i, types[i])
		}
	}
}

func TestPreorderEarlyStop(t *testing.T) {
	expr := &Seq{Exprs: []Expr{
		&Ident{Name: "a"},
		&Ident{Name: "b"},
		&Ident{Name: "c"},
	}}

	var seen int
	for range Preorder(expr) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("expected early stop after 2 nodes, got %d", seen)
	}
}
