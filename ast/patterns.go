package ast

import (
	"strings"

	"github.com/HyperLuna/jexpr/internal/token"
)

// ObjectPattern is a destructuring pattern over object properties,
// e.g. "{a, b: c, ...rest}". Each entry is a *Property (whose Value is a
// nested pattern) or a *Rest.
type ObjectPattern struct {
	Lbrace token.Position // position of "{"
	Props  []Expr         // entries (Property or Rest)
	Rbrace token.Position // position of "}"
}

func (x *ObjectPattern) exprNode() {}

func (x *ObjectPattern) Pos() token.Position { return x.Lbrace }
func (x *ObjectPattern) End() token.Position { return x.Rbrace.Advance(1) }

func (x *ObjectPattern) String() string {
	parts := make([]string, 0, len(x.Props))
	for _, p := range x.Props {
		parts = append(parts, p.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ArrayPattern is a destructuring pattern over array elements,
// e.g. "[a, , b, ...rest]". A nil element represents an elision (hole).
type ArrayPattern struct {
	Lbrack token.Position // position of "["
	Elts   []Expr         // elements; nil entries are holes
	Rbrack token.Position // position of "]"
}

func (x *ArrayPattern) exprNode() {}

func (x *ArrayPattern) Pos() token.Position { return x.Lbrack }
func (x *ArrayPattern) End() token.Position { return x.Rbrack.Advance(1) }

func (x *ArrayPattern) String() string {
	parts := make([]string, 0, len(x.Elts))
	for _, e := range x.Elts {
		if e == nil {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Rest is a rest capture inside a pattern or parameter list,
// e.g. "...rest". Target is the pattern receiving the remaining values.
type Rest struct {
	Ellipsis token.Position // position of "..."
	Target   Expr           // pattern receiving the rest
}

func (x *Rest) exprNode() {}

func (x *Rest) Pos() token.Position { return x.Ellipsis }
func (x *Rest) End() token.Position { return x.Target.End() }

func (x *Rest) String() string { return "..." + x.Target.String() }

// Default is a pattern with a default value, e.g. "a = 1" in a parameter
// list or "{a = 1}" inside an object pattern. Target is the binding
// pattern; Value is the default expression evaluated when the bound value
// is undefined.
type Default struct {
	Target Expr // binding pattern
	Value  Expr // default expression
}

func (x *Default) exprNode() {}

func (x *Default) Pos() token.Position { return x.Target.Pos() }
func (x *Default) End() token.Position { return x.Value.End() }

func (x *Default) String() string {
	return x.Target.String() + " = " + x.Value.String()
}
