package ast

import (
	"bytes"
	"strings"

	"github.com/HyperLuna/jexpr/internal/token"
)

// Ident is an expression node that refers to a variable by name.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Ident) String() string { return x.Name }

// PrivateName is a class-private identifier (#name). It can only appear
// inside a class body, which the certifier never admits; it exists in the
// grammar so that member accesses using it can be rejected by name.
type PrivateName struct {
	HashPos token.Position // position of "#"
	Name    string         // name without the leading "#"
}

func (x *PrivateName) exprNode() {}

func (x *PrivateName) Pos() token.Position { return x.HashPos }
func (x *PrivateName) End() token.Position { return x.HashPos.Advance(len(x.Name) + 1) }

func (x *PrivateName) String() string { return "#" + x.Name }

// This is an expression node referring to the current receiver.
type This struct {
	ThisPos token.Position // position of "this" keyword
}

func (x *This) exprNode() {}

func (x *This) Pos() token.Position { return x.ThisPos }
func (x *This) End() token.Position { return x.ThisPos.Advance(4) } // len("this")

func (x *This) String() string { return "this" }

// Super is the receiver of a superclass member access. It has no meaning
// outside a class body and is always rejected by the certifier.
type Super struct {
	SuperPos token.Position // position of "super" keyword
}

func (x *Super) exprNode() {}

func (x *Super) Pos() token.Position { return x.SuperPos }
func (x *Super) End() token.Position { return x.SuperPos.Advance(5) } // len("super")

func (x *Super) String() string { return "super" }

// Member is an expression node that describes a property access on an
// object. Prop is an Ident holding a fixed property name unless Computed
// is set, in which case it is an arbitrary index expression.
type Member struct {
	X        Expr // object expression
	Prop     Expr // property name or index expression
	Computed bool // true for x[prop], false for x.prop
	Optional bool // true if optional chaining (?.)
}

func (x *Member) exprNode() {}

func (x *Member) Pos() token.Position { return x.X.Pos() }
func (x *Member) End() token.Position {
	if x.Computed {
		return x.Prop.End().Advance(1) // "]"
	}
	return x.Prop.End()
}

func (x *Member) String() string {
	var out bytes.Buffer
	out.WriteString(x.X.String())
	if x.Computed {
		if x.Optional {
			out.WriteString("?.")
		}
		out.WriteString("[")
		out.WriteString(x.Prop.String())
		out.WriteString("]")
	} else {
		if x.Optional {
			out.WriteString("?.")
		} else {
			out.WriteString(".")
		}
		out.WriteString(x.Prop.String())
	}
	return out.String()
}

// Chain wraps the outermost member access or call of an optional chain.
type Chain struct {
	X Expr // the chained expression
}

func (x *Chain) exprNode() {}

func (x *Chain) Pos() token.Position { return x.X.Pos() }
func (x *Chain) End() token.Position { return x.X.End() }

func (x *Chain) String() string { return x.X.String() }

// Unary is an operator expression where the operator precedes the operand.
// Examples include "!x", "-x", "typeof x" and "delete x.y".
type Unary struct {
	OpPos token.Position // position of operator
	Op    string         // operator: "!", "-", "+", "~", "void", "typeof", "delete"
	X     Expr           // operand
}

func (x *Unary) exprNode() {}

func (x *Unary) Pos() token.Position { return x.OpPos }
func (x *Unary) End() token.Position { return x.X.End() }

func (x *Unary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	if len(x.Op) > 1 {
		out.WriteString(" ")
	}
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// Binary is an operator expression where the operator is between the
// operands. Examples include "x + y" and "key in obj".
type Binary struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "+", "-", "==", "in", "instanceof", etc.
	Y     Expr           // right operand
}

func (x *Binary) exprNode() {}

func (x *Binary) Pos() token.Position { return x.X.Pos() }
func (x *Binary) End() token.Position { return x.Y.End() }

func (x *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Logical is a short-circuiting operator expression: "&&", "||" or "??".
type Logical struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "&&", "||", "??"
	Y     Expr           // right operand
}

func (x *Logical) exprNode() {}

func (x *Logical) Pos() token.Position { return x.X.Pos() }
func (x *Logical) End() token.Position { return x.Y.End() }

func (x *Logical) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Update is an increment or decrement expression, e.g. "x++" or "--y".
type Update struct {
	OpPos  token.Position // position of operator
	Op     string         // operator: "++" or "--"
	Prefix bool           // true for "++x", false for "x++"
	X      Expr           // operand
}

func (x *Update) exprNode() {}

func (x *Update) Pos() token.Position {
	if x.Prefix {
		return x.OpPos
	}
	return x.X.Pos()
}

func (x *Update) End() token.Position {
	if x.Prefix {
		return x.X.End()
	}
	return x.OpPos.Advance(len(x.Op))
}

func (x *Update) String() string {
	if x.Prefix {
		return "(" + x.Op + x.X.String() + ")"
	}
	return "(" + x.X.String() + x.Op + ")"
}

// Assign is an assignment expression, e.g. "x = 1" or "x.y += 2".
// Left may be an identifier, a member access, or a destructuring pattern.
type Assign struct {
	Left  Expr           // assignment target
	OpPos token.Position // position of operator
	Op    string         // operator: "=", "+=", "-=", etc.
	Right Expr           // assigned value
}

func (x *Assign) exprNode() {}

func (x *Assign) Pos() token.Position { return x.Left.Pos() }
func (x *Assign) End() token.Position { return x.Right.End() }

func (x *Assign) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Left.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Right.String())
	out.WriteString(")")
	return out.String()
}

// Cond is a ternary expression that evaluates to one of two values based
// on a condition.
type Cond struct {
	Test     Expr           // condition
	Question token.Position // position of "?"
	Then     Expr           // value if condition is true
	Colon    token.Position // position of ":"
	Else     Expr           // value if condition is false
}

func (x *Cond) exprNode() {}

func (x *Cond) Pos() token.Position { return x.Test.Pos() }
func (x *Cond) End() token.Position { return x.Else.End() }

func (x *Cond) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Test.String())
	out.WriteString(" ? ")
	out.WriteString(x.Then.String())
	out.WriteString(" : ")
	out.WriteString(x.Else.String())
	out.WriteString(")")
	return out.String()
}

// Seq is a comma expression evaluating each operand in order and yielding
// the value of the last one.
type Seq struct {
	Exprs []Expr // comma-separated expressions
}

func (x *Seq) exprNode() {}

func (x *Seq) Pos() token.Position { return x.Exprs[0].Pos() }
func (x *Seq) End() token.Position { return x.Exprs[len(x.Exprs)-1].End() }

func (x *Seq) String() string {
	parts := make([]string, 0, len(x.Exprs))
	for _, e := range x.Exprs {
		parts = append(parts, e.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Spread represents a spread entry (...expr) in an array literal, object
// literal, or argument list.
type Spread struct {
	Ellipsis token.Position // position of "..."
	X        Expr           // expression being spread
}

func (x *Spread) exprNode() {}

func (x *Spread) Pos() token.Position { return x.Ellipsis }
func (x *Spread) End() token.Position { return x.X.End() }

func (x *Spread) String() string { return "..." + x.X.String() }

// Arrow is an arrow function expression. Body is an Expr for a concise
// body and a *Block for a statement body; the certifier only ever admits
// the concise form.
type Arrow struct {
	Start  token.Position // position of "(" or the sole parameter
	Params []Expr         // parameter patterns
	Body   Node           // Expr (concise body) or *Block (statement body)
	Async  bool           // true for "async (...) => ..."
}

func (x *Arrow) exprNode() {}

func (x *Arrow) Pos() token.Position { return x.Start }
func (x *Arrow) End() token.Position { return x.Body.End() }

func (x *Arrow) String() string {
	var out bytes.Buffer
	if x.Async {
		out.WriteString("async ")
	}
	params := make([]string, 0, len(x.Params))
	for _, p := range x.Params {
		params = append(params, p.String())
	}
	out.WriteString("((")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") => ")
	out.WriteString(x.Body.String())
	out.WriteString(")")
	return out.String()
}

// Call is an expression node that describes the invocation of a function.
type Call struct {
	Fun      Expr           // function expression
	Lparen   token.Position // position of "("
	Args     []Expr         // arguments (Expr or Spread)
	Rparen   token.Position // position of ")"
	Optional bool           // true if optional chaining (?.())
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

func (x *Call) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	out.WriteString(x.Fun.String())
	if x.Optional {
		out.WriteString("?.")
	}
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// New is a constructor invocation, e.g. "new Date(ts)".
type New struct {
	NewPos token.Position // position of "new" keyword
	Fun    Expr           // constructor expression
	Args   []Expr         // arguments (Expr or Spread)
	Rparen token.Position // position of ")"; zero if no argument list
}

func (x *New) exprNode() {}

func (x *New) Pos() token.Position { return x.NewPos }
func (x *New) End() token.Position {
	if x.Rparen.IsValid() {
		return x.Rparen.Advance(1)
	}
	return x.Fun.End()
}

func (x *New) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	out.WriteString("(new ")
	out.WriteString(x.Fun.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString("))")
	return out.String()
}

// TaggedTemplate applies a tag function to a template literal,
// e.g. "html`<b>${x}</b>`".
type TaggedTemplate struct {
	Tag   Expr      // tag expression
	Quasi *Template // the template literal
}

func (x *TaggedTemplate) exprNode() {}

func (x *TaggedTemplate) Pos() token.Position { return x.Tag.Pos() }
func (x *TaggedTemplate) End() token.Position { return x.Quasi.End() }

func (x *TaggedTemplate) String() string {
	return x.Tag.String() + x.Quasi.String()
}
