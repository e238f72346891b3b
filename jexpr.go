// Package jexpr compiles untrusted expression trees into callable
// function source. It ties together the certifier, which restricts the
// tree to a closed syntax subset and eliminates free variables, and the
// code generator, which renders the result as ECMAScript text. The host
// that ultimately evaluates that text is out of scope here.
package jexpr

import (
	"strings"

	"github.com/HyperLuna/jexpr/ast"
	"github.com/HyperLuna/jexpr/certify"
	"github.com/HyperLuna/jexpr/codegen"
)

// Option configures a certification. The options are those of the
// certify package.
type Option = certify.Option

// Policy re-exports the certifier's switch set for table-driven
// configuration.
type Policy = certify.Policy

// Certify validates and rewrites one expression tree. It is a
// convenience alias for certify.Certify.
func Certify(expr ast.Expr, params []string, opts ...Option) (ast.Expr, error) {
	return certify.Certify(expr, params, opts...)
}

// Function is a certified expression packaged as a callable unit: an
// ordered parameter list plus the generated body text. It is immutable
// and safe for concurrent use.
type Function struct {
	params []string
	body   string
	tree   ast.Expr
}

// Params returns a copy of the function's parameter names, in order.
func (f *Function) Params() []string {
	out := make([]string, len(f.params))
	copy(out, f.params)
	return out
}

// Body returns the generated expression text, without the parameter
// wrapper.
func (f *Function) Body() string {
	return f.body
}

// Tree returns the certified expression tree the body was generated
// from.
func (f *Function) Tree() ast.Expr {
	return f.tree
}

// Source renders the function as an arrow function expression, e.g.
// "(a, b) => (a + b.c)". The body is always parenthesized so object
// literal bodies parse as expressions.
func (f *Function) Source() string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(strings.Join(f.params, ", "))
	out.WriteString(") => (")
	out.WriteString(f.body)
	out.WriteString(")")
	return out.String()
}

// Compile certifies an expression tree against the parameter list and
// renders it as a callable function. The certified tree and generated
// text are both retained on the returned Function.
func Compile(expr ast.Expr, params []string, opts ...Option) (*Function, error) {
	certified, err := Certify(expr, params, opts...)
	if err != nil {
		return nil, err
	}
	body, err := codegen.Generate(certified)
	if err != nil {
		return nil, err
	}
	return &Function{
		params: append([]string(nil), params...),
		body:   body,
		tree:   certified,
	}, nil
}
