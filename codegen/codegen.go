// Package codegen renders certified expression trees back to ECMAScript
// source text.
//
// Output is deterministic and safe rather than pretty: every operator
// expression is parenthesized so the rendering never depends on
// precedence rules. The generator fails on node kinds the certifier
// never emits.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HyperLuna/jexpr/ast"
)

// Generate renders node as ECMAScript source text.
func Generate(node ast.Node) (string, error) {
	g := &generator{}
	if err := g.emit(node); err != nil {
		return "", err
	}
	return g.out.String(), nil
}

type generator struct {
	out strings.Builder
}

func (g *generator) write(s string) {
	g.out.WriteString(s)
}

func (g *generator) emit(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Ident:
		g.write(n.Name)

	case *ast.Literal:
		g.write(literal(n))

	case *ast.This:
		g.write("this")

	case *ast.Array:
		g.write("[")
		for i, e := range n.Elts {
			if i > 0 {
				g.write(", ")
			}
			if e == nil {
				continue // elision
			}
			if err := g.emit(e); err != nil {
				return err
			}
		}
		// A trailing elision needs its comma to survive
		if len(n.Elts) > 0 && n.Elts[len(n.Elts)-1] == nil {
			g.write(",")
		}
		g.write("]")

	case *ast.Object:
		return g.props("{", n.Props, "}")

	case *ast.ObjectPattern:
		return g.props("{", n.Props, "}")

	case *ast.ArrayPattern:
		g.write("[")
		for i, e := range n.Elts {
			if i > 0 {
				g.write(", ")
			}
			if e == nil {
				continue
			}
			if err := g.emit(e); err != nil {
				return err
			}
		}
		g.write("]")

	case *ast.Property:
		if n.Shorthand {
			return g.emit(n.Value)
		}
		if n.Computed {
			g.write("[")
			if err := g.emit(n.Key); err != nil {
				return err
			}
			g.write("]")
		} else if err := g.emit(n.Key); err != nil {
			return err
		}
		g.write(": ")
		return g.emit(n.Value)

	case *ast.Spread:
		g.write("...")
		return g.emit(n.X)

	case *ast.Rest:
		g.write("...")
		return g.emit(n.Target)

	case *ast.Default:
		if err := g.emit(n.Target); err != nil {
			return err
		}
		g.write(" = ")
		return g.emit(n.Value)

	case *ast.Member:
		if err := g.group(n.X); err != nil {
			return err
		}
		if n.Computed {
			if n.Optional {
				g.write("?.")
			}
			g.write("[")
			if err := g.emit(n.Prop); err != nil {
				return err
			}
			g.write("]")
		} else {
			if n.Optional {
				g.write("?.")
			} else {
				g.write(".")
			}
			return g.emit(n.Prop)
		}

	case *ast.Chain:
		return g.emit(n.X)

	case *ast.Unary:
		g.write("(")
		g.write(n.Op)
		if len(n.Op) > 1 {
			g.write(" ")
		}
		if err := g.emit(n.X); err != nil {
			return err
		}
		g.write(")")

	case *ast.Binary:
		return g.infix(n.X, n.Op, n.Y)

	case *ast.Logical:
		return g.infix(n.X, n.Op, n.Y)

	case *ast.Update:
		g.write("(")
		if n.Prefix {
			g.write(n.Op)
			if err := g.emit(n.X); err != nil {
				return err
			}
		} else {
			if err := g.emit(n.X); err != nil {
				return err
			}
			g.write(n.Op)
		}
		g.write(")")

	case *ast.Assign:
		return g.infix(n.Left, n.Op, n.Right)

	case *ast.Cond:
		g.write("(")
		if err := g.emit(n.Test); err != nil {
			return err
		}
		g.write(" ? ")
		if err := g.emit(n.Then); err != nil {
			return err
		}
		g.write(" : ")
		if err := g.emit(n.Else); err != nil {
			return err
		}
		g.write(")")

	case *ast.Seq:
		g.write("(")
		for i, e := range n.Exprs {
			if i > 0 {
				g.write(", ")
			}
			if err := g.emit(e); err != nil {
				return err
			}
		}
		g.write(")")

	case *ast.Template:
		g.write("`")
		for i, el := range n.Elements {
			g.write(el.Raw)
			if i < len(n.Exprs) {
				g.write("${")
				if err := g.emit(n.Exprs[i]); err != nil {
					return err
				}
				g.write("}")
			}
		}
		g.write("`")

	case *ast.TaggedTemplate:
		if err := g.group(n.Tag); err != nil {
			return err
		}
		return g.emit(n.Quasi)

	case *ast.Arrow:
		body, ok := n.Body.(ast.Expr)
		if !ok {
			return fmt.Errorf("codegen: arrow function has no expression body")
		}
		g.write("(")
		if n.Async {
			g.write("async ")
		}
		g.write("(")
		for i, p := range n.Params {
			if i > 0 {
				g.write(", ")
			}
			if err := g.emit(p); err != nil {
				return err
			}
		}
		g.write(") => ")
		if err := g.groupBody(body); err != nil {
			return err
		}
		g.write(")")

	case *ast.Call:
		if err := g.group(n.Fun); err != nil {
			return err
		}
		if n.Optional {
			g.write("?.")
		}
		return g.args(n.Args)

	case *ast.New:
		g.write("(new ")
		if err := g.group(n.Fun); err != nil {
			return err
		}
		if err := g.args(n.Args); err != nil {
			return err
		}
		g.write(")")

	default:
		return fmt.Errorf("codegen: cannot render %s", ast.Type(node))
	}
	return nil
}

func (g *generator) infix(x ast.Expr, op string, y ast.Expr) error {
	g.write("(")
	if err := g.emit(x); err != nil {
		return err
	}
	g.write(" " + op + " ")
	if err := g.emit(y); err != nil {
		return err
	}
	g.write(")")
	return nil
}

func (g *generator) args(list []ast.Expr) error {
	g.write("(")
	for i, a := range list {
		if i > 0 {
			g.write(", ")
		}
		if err := g.emit(a); err != nil {
			return err
		}
	}
	g.write(")")
	return nil
}

func (g *generator) props(open string, props []ast.Expr, closing string) error {
	g.write(open)
	for i, p := range props {
		if i > 0 {
			g.write(", ")
		}
		if err := g.emit(p); err != nil {
			return err
		}
	}
	g.write(closing)
	return nil
}

// group parenthesizes receivers that would otherwise bind wrongly when a
// member access, call, or template tag is applied to them.
func (g *generator) group(x ast.Expr) error {
	switch x.(type) {
	case *ast.Ident, *ast.Member, *ast.Call, *ast.This, *ast.Chain:
		return g.emit(x)
	default:
		g.write("(")
		if err := g.emit(x); err != nil {
			return err
		}
		g.write(")")
		return nil
	}
}

// groupBody parenthesizes object literals in arrow body position, where
// a bare "{" would parse as a statement block.
func (g *generator) groupBody(x ast.Expr) error {
	if _, ok := x.(*ast.Object); ok {
		g.write("(")
		if err := g.emit(x); err != nil {
			return err
		}
		g.write(")")
		return nil
	}
	return g.emit(x)
}

func literal(n *ast.Literal) string {
	if n.Raw != "" {
		return n.Raw
	}
	switch v := n.Value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
