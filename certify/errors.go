package certify

import (
	"fmt"

	"github.com/HyperLuna/jexpr/ast"
	"github.com/HyperLuna/jexpr/internal/token"
)

// ErrorKind represents the category of a certification error.
type ErrorKind int

const (
	// ErrConfig indicates a malformed parameter list or an inconsistent
	// global binding name, detected before traversal begins.
	ErrConfig ErrorKind = iota
	// ErrPolicy indicates a node kind or operator excluded by the active
	// policy, or a permanently unsupported construct.
	ErrPolicy
	// ErrUnresolved indicates a free identifier encountered with no
	// global binding configured.
	ErrUnresolved
	// ErrPattern indicates a malformed destructuring shape in a
	// parameter position.
	ErrPattern
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrConfig:
		return "config error"
	case ErrPolicy:
		return "syntax policy violation"
	case ErrUnresolved:
		return "unresolved reference"
	case ErrPattern:
		return "pattern error"
	default:
		return "error"
	}
}

// Error is a structured certification failure. Exactly one error is
// produced per call; any failure aborts the traversal with no partial
// result.
type Error struct {
	Kind     ErrorKind      // error category
	Message  string         // description of the failure
	NodeType string         // ESTree type name of the offending node, if any
	Operator string         // offending operator, if any
	Name     string         // offending identifier name, if any
	Position token.Position // source location of the offending node
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
	if e.Position.IsValid() {
		msg = fmt.Sprintf("%s (%d:%d)", msg, e.Position.LineNumber(), e.Position.ColumnNumber())
	}
	return msg
}

func newConfigError(format string, args ...any) *Error {
	return &Error{Kind: ErrConfig, Message: fmt.Sprintf(format, args...)}
}

func newPolicyError(node ast.Node, format string, args ...any) *Error {
	return &Error{
		Kind:     ErrPolicy,
		Message:  fmt.Sprintf(format, args...),
		NodeType: ast.Type(node),
		Position: node.Pos(),
	}
}

func newOperatorError(node ast.Node, op string, format string, args ...any) *Error {
	return &Error{
		Kind:     ErrPolicy,
		Message:  fmt.Sprintf(format, args...),
		NodeType: ast.Type(node),
		Operator: op,
		Position: node.Pos(),
	}
}

func newUnresolvedError(ident *ast.Ident) *Error {
	return &Error{
		Kind:     ErrUnresolved,
		Message:  fmt.Sprintf("undefined variable %q", ident.Name),
		NodeType: ast.Type(ident),
		Name:     ident.Name,
		Position: ident.Pos(),
	}
}

func newPatternError(node ast.Node, format string, args ...any) *Error {
	return &Error{
		Kind:     ErrPattern,
		Message:  fmt.Sprintf(format, args...),
		NodeType: ast.Type(node),
		Position: node.Pos(),
	}
}
