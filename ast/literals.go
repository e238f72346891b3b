package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/HyperLuna/jexpr/internal/token"
)

// Literal is an expression node holding a primitive literal: a number,
// string, boolean, null, or regular expression. Value holds the parsed
// value (nil for null); Raw preserves the literal text.
type Literal struct {
	ValuePos token.Position // position of the literal
	Value    any            // float64, string, bool, or nil
	Raw      string         // the literal text, e.g. `"hi"`, "0x2a", "/a+/g"
}

func (x *Literal) exprNode() {}

func (x *Literal) Pos() token.Position { return x.ValuePos }
func (x *Literal) End() token.Position { return x.ValuePos.Advance(len(x.Raw)) }

func (x *Literal) String() string {
	if x.Raw != "" {
		return x.Raw
	}
	if x.Value == nil {
		return "null"
	}
	if s, ok := x.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", x.Value)
}

// Array is an array literal. A nil element represents an elision (hole),
// as in "[1, , 3]".
type Array struct {
	Lbrack token.Position // position of "["
	Elts   []Expr         // elements; nil entries are holes
	Rbrack token.Position // position of "]"
}

func (x *Array) exprNode() {}

func (x *Array) Pos() token.Position { return x.Lbrack }
func (x *Array) End() token.Position { return x.Rbrack.Advance(1) }

func (x *Array) String() string {
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

// Object is an object literal. Each entry is a *Property or a *Spread.
type Object struct {
	Lbrace token.Position // position of "{"
	Props  []Expr         // entries (Property or Spread)
	Rbrace token.Position // position of "}"
}

func (x *Object) exprNode() {}

func (x *Object) Pos() token.Position { return x.Lbrace }
func (x *Object) End() token.Position { return x.Rbrace.Advance(1) }

func (x *Object) String() string {
	parts := make([]string, 0, len(x.Props))
	for _, p := range x.Props {
		parts = append(parts, p.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Property is one key/value entry in an object literal or object pattern.
// Key is an Ident or Literal holding a fixed name unless Computed is set,
// in which case it is an arbitrary expression. In a pattern, Value is
// itself a pattern.
type Property struct {
	Key       Expr // property key
	Value     Expr // property value, or nested pattern
	Computed  bool // true for {[k]: v}
	Shorthand bool // true for {a} where key and value are the same name
}

func (x *Property) exprNode() {}

func (x *Property) Pos() token.Position { return x.Key.Pos() }
func (x *Property) End() token.Position { return x.Value.End() }

func (x *Property) String() string {
	if x.Shorthand {
		return x.Value.String()
	}
	var out bytes.Buffer
	if x.Computed {
		out.WriteString("[")
		out.WriteString(x.Key.String())
		out.WriteString("]")
	} else {
		out.WriteString(x.Key.String())
	}
	out.WriteString(": ")
	out.WriteString(x.Value.String())
	return out.String()
}

// Template is a template literal. It always holds one more element than
// interpolated expressions; elements and expressions alternate, starting
// and ending with an element.
type Template struct {
	Backtick token.Position     // position of the opening "`"
	Elements []*TemplateElement // literal text segments
	Exprs    []Expr             // interpolated expressions
}

func (x *Template) exprNode() {}

func (x *Template) Pos() token.Position { return x.Backtick }
func (x *Template) End() token.Position {
	if n := len(x.Elements); n > 0 {
		return x.Elements[n-1].End().Advance(1) // closing "`"
	}
	return x.Backtick.Advance(2)
}

func (x *Template) String() string {
	var out bytes.Buffer
	out.WriteString("`")
	for i, el := range x.Elements {
		out.WriteString(el.Raw)
		if i < len(x.Exprs) {
			out.WriteString("${")
			out.WriteString(x.Exprs[i].String())
			out.WriteString("}")
		}
	}
	out.WriteString("`")
	return out.String()
}

// TemplateElement is one literal text segment of a template literal.
type TemplateElement struct {
	StartPos token.Position // position of the segment text
	Raw      string         // raw segment text
	Cooked   string         // segment text with escapes processed
	Tail     bool           // true for the segment after the last expression
}

func (x *TemplateElement) exprNode() {}

func (x *TemplateElement) Pos() token.Position { return x.StartPos }
func (x *TemplateElement) End() token.Position { return x.StartPos.Advance(len(x.Raw)) }

func (x *TemplateElement) String() string { return x.Raw }
