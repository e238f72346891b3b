package ast

import (
	"testing"

	"github.com/HyperLuna/jexpr/internal/token"
)

func TestIdentString(t *testing.T) {
	x := &Ident{NamePos: token.Position{Line: 0, Column: 0}, Name: "price"}
	if x.String() != "price" {
		t.Errorf("Ident.String() wrong. got=%q", x.String())
	}
	if x.End().Column != 5 {
		t.Errorf("Ident.End() wrong. got=%d", x.End().Column)
	}
}

func TestMemberString(t *testing.T) {
	m := &Member{
		X:    &Ident{Name: "order"},
		Prop: &Ident{Name: "total"},
	}
	if m.String() != "order.total" {
		t.Errorf("Member.String() wrong. got=%q", m.String())
	}
	computed := &Member{
		X:        &Ident{Name: "row"},
		Prop:     &Literal{Value: float64(0), Raw: "0"},
		Computed: true,
	}
	if computed.String() != "row[0]" {
		t.Errorf("computed Member.String() wrong. got=%q", computed.String())
	}
}

func TestBinaryString(t *testing.T) {
	b := &Binary{
		X:  &Ident{Name: "a"},
		Op: "+",
		Y:  &Ident{Name: "b"},
	}
	if b.String() != "(a + b)" {
		t.Errorf("Binary.String() wrong. got=%q", b.String())
	}
}

func TestArrowString(t *testing.T) {
	a := &Arrow{
		Params: []Expr{&Ident{Name: "x"}},
		Body: &Binary{
			X:  &Ident{Name: "x"},
			Op: "*",
			Y:  &Literal{Value: float64(2), Raw: "2"},
		},
	}
	if a.String() != "((x) => (x * 2))" {
		t.Errorf("Arrow.String() wrong. got=%q", a.String())
	}
}

func TestObjectPatternString(t *testing.T) {
	p := &ObjectPattern{
		Props: []Expr{
			&Property{
				Key:       &Ident{Name: "a"},
				Value:     &Ident{Name: "a"},
				Shorthand: true,
			},
			&Rest{Target: &Ident{Name: "rest"}},
		},
	}
	if p.String() != "{a, ...rest}" {
		t.Errorf("ObjectPattern.String() wrong. got=%q", p.String())
	}
}

func TestTemplateString(t *testing.T) {
	tpl := &Template{
		Elements: []*TemplateElement{
			{Raw: "total: ", Cooked: "total: "},
			{Raw: "", Cooked: "", Tail: true},
		},
		Exprs: []Expr{&Ident{Name: "total"}},
	}
	if tpl.String() != "`total: ${total}`" {
		t.Errorf("Template.String() wrong. got=%q", tpl.String())
	}
}

func TestType(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Ident{Name: "a"}, "Identifier"},
		{&Literal{Value: nil, Raw: "null"}, "Literal"},
		{&This{}, "ThisExpression"},
		{&Super{}, "Super"},
		{&PrivateName{Name: "secret"}, "PrivateIdentifier"},
		{&Member{X: &Ident{Name: "a"}, Prop: &Ident{Name: "b"}}, "MemberExpression"},
		{&Update{Op: "++", X: &Ident{Name: "a"}}, "UpdateExpression"},
		{&Arrow{Body: &Ident{Name: "x"}}, "ArrowFunctionExpression"},
		{&ObjectPattern{}, "ObjectPattern"},
		{&Default{Target: &Ident{Name: "a"}, Value: &Literal{Raw: "1"}}, "AssignmentPattern"},
		{&Block{}, "BlockStatement"},
		{&ImportCall{Source: &Literal{Raw: `"m"`}}, "ImportExpression"},
		{&Unknown{TypeName: "WithStatement"}, "WithStatement"},
	}
	for _, tt := range tests {
		if got := Type(tt.node); got != tt.want {
			t.Errorf("Type(%T) = %q, want %q", tt.node, got, tt.want)
		}
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		lit  *Literal
		want string
	}{
		{&Literal{Value: float64(42), Raw: "42"}, "42"},
		{&Literal{Value: "hi", Raw: `"hi"`}, `"hi"`},
		{&Literal{Value: "hi"}, `"hi"`},
		{&Literal{Value: nil}, "null"},
		{&Literal{Value: true}, "true"},
	}
	for _, tt := range tests {
		if got := tt.lit.String(); got != tt.want {
			t.Errorf("Literal.String() = %q, want %q", got, tt.want)
		}
	}
}
