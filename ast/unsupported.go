package ast

import (
	"strings"

	"github.com/HyperLuna/jexpr/internal/token"
)

// The node kinds in this file are part of the expression grammar but are
// never admitted by the certifier, under any configuration. They carry
// only as much structure as error reporting needs.

// Func is a function expression, e.g. "function f(a) { ... }".
type Func struct {
	FuncPos token.Position // position of "function" keyword
	Name    *Ident         // function name; nil if anonymous
	Params  []Expr         // parameter patterns
	Body    *Block         // function body
}

func (x *Func) exprNode() {}

func (x *Func) Pos() token.Position { return x.FuncPos }
func (x *Func) End() token.Position { return x.Body.End() }

func (x *Func) String() string {
	var name string
	if x.Name != nil {
		name = " " + x.Name.Name
	}
	return "function" + name + "(...) {...}"
}

// Class is a class expression, e.g. "class extends Base { ... }".
type Class struct {
	ClassPos token.Position // position of "class" keyword
	Name     *Ident         // class name; nil if anonymous
	To       token.Position // position after the closing "}"
}

func (x *Class) exprNode() {}

func (x *Class) Pos() token.Position { return x.ClassPos }
func (x *Class) End() token.Position { return x.To }

func (x *Class) String() string {
	var name string
	if x.Name != nil {
		name = " " + x.Name.Name
	}
	return "class" + name + " {...}"
}

// MetaProperty is a meta property access such as "new.target" or
// "import.meta".
type MetaProperty struct {
	Meta *Ident // "new" or "import"
	Prop *Ident // "target" or "meta"
}

func (x *MetaProperty) exprNode() {}

func (x *MetaProperty) Pos() token.Position { return x.Meta.Pos() }
func (x *MetaProperty) End() token.Position { return x.Prop.End() }

func (x *MetaProperty) String() string { return x.Meta.Name + "." + x.Prop.Name }

// Yield is a generator yield expression.
type Yield struct {
	YieldPos token.Position // position of "yield" keyword
	X        Expr           // yielded value; nil if absent
	Delegate bool           // true for "yield*"
}

func (x *Yield) exprNode() {}

func (x *Yield) Pos() token.Position { return x.YieldPos }
func (x *Yield) End() token.Position {
	if x.X != nil {
		return x.X.End()
	}
	return x.YieldPos.Advance(5) // len("yield")
}

func (x *Yield) String() string {
	out := "yield"
	if x.Delegate {
		out += "*"
	}
	if x.X != nil {
		out += " " + x.X.String()
	}
	return out
}

// Await is an asynchronous await expression.
type Await struct {
	AwaitPos token.Position // position of "await" keyword
	X        Expr           // awaited value
}

func (x *Await) exprNode() {}

func (x *Await) Pos() token.Position { return x.AwaitPos }
func (x *Await) End() token.Position { return x.X.End() }

func (x *Await) String() string { return "(await " + x.X.String() + ")" }

// ImportCall is a dynamic import expression, e.g. "import('mod')".
type ImportCall struct {
	ImportPos token.Position // position of "import" keyword
	Source    Expr           // module specifier expression
	Rparen    token.Position // position of ")"
}

func (x *ImportCall) exprNode() {}

func (x *ImportCall) Pos() token.Position { return x.ImportPos }
func (x *ImportCall) End() token.Position { return x.Rparen.Advance(1) }

func (x *ImportCall) String() string { return "import(" + x.Source.String() + ")" }

// Block is a braced statement sequence. It appears in the grammar only as
// an arrow function body, which the certifier always rejects; statements
// themselves are outside the grammar and decode as Unknown nodes.
type Block struct {
	Lbrace token.Position // position of "{"
	Stmts  []Node         // statements
	Rbrace token.Position // position of "}"
}

func (x *Block) stmtNode() {}

func (x *Block) Pos() token.Position { return x.Lbrace }
func (x *Block) End() token.Position { return x.Rbrace.Advance(1) }

func (x *Block) String() string {
	parts := make([]string, 0, len(x.Stmts))
	for _, s := range x.Stmts {
		parts = append(parts, s.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}
