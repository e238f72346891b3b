// Package ast defines the syntax tree representation of ECMAScript
// expressions accepted by the certifier.
//
// The grammar is deliberately a subset of ESTree: single expressions only,
// plus the pattern kinds that appear inside arrow function parameter lists.
// Statement-level constructs are represented only as far as needed to reject
// them with a useful message (see Block and the unsupported kinds).
package ast

import "github.com/HyperLuna/jexpr/internal/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions. Pattern nodes also
// satisfy Expr because ESTree trees place patterns in expression
// positions (arrow parameters, destructuring assignment targets).
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node. The certifier admits no statements;
// the interface exists so an arrow function body can hold a block that
// the policy then rejects.
type Stmt interface {
	Node
	stmtNode()
}

// Type returns the ESTree-style type name for a node, e.g. "Identifier"
// or "MemberExpression". Used in error reporting and JSON encoding.
func Type(node Node) string {
	switch n := node.(type) {
	case *Ident:
		return "Identifier"
	case *PrivateName:
		return "PrivateIdentifier"
	case *Literal:
		return "Literal"
	case *This:
		return "ThisExpression"
	case *Super:
		return "Super"
	case *Array:
		return "ArrayExpression"
	case *Object:
		return "ObjectExpression"
	case *Property:
		return "Property"
	case *Spread:
		return "SpreadElement"
	case *Member:
		return "MemberExpression"
	case *Chain:
		return "ChainExpression"
	case *Unary:
		return "UnaryExpression"
	case *Binary:
		return "BinaryExpression"
	case *Logical:
		return "LogicalExpression"
	case *Update:
		return "UpdateExpression"
	case *Assign:
		return "AssignmentExpression"
	case *Cond:
		return "ConditionalExpression"
	case *Seq:
		return "SequenceExpression"
	case *Template:
		return "TemplateLiteral"
	case *TemplateElement:
		return "TemplateElement"
	case *TaggedTemplate:
		return "TaggedTemplateExpression"
	case *Arrow:
		return "ArrowFunctionExpression"
	case *Call:
		return "CallExpression"
	case *New:
		return "NewExpression"
	case *ObjectPattern:
		return "ObjectPattern"
	case *ArrayPattern:
		return "ArrayPattern"
	case *Rest:
		return "RestElement"
	case *Default:
		return "AssignmentPattern"
	case *Func:
		return "FunctionExpression"
	case *Class:
		return "ClassExpression"
	case *MetaProperty:
		return "MetaProperty"
	case *Yield:
		return "YieldExpression"
	case *Await:
		return "AwaitExpression"
	case *ImportCall:
		return "ImportExpression"
	case *Block:
		return "BlockStatement"
	case *Unknown:
		return n.TypeName
	default:
		return "Unknown"
	}
}

// Unknown is a placeholder for a node kind outside the grammar. The JSON
// decoder produces one for unrecognized type tags so that the certifier
// can reject it with a uniform unknown-kind error.
type Unknown struct {
	From     token.Position // start of the unknown node
	TypeName string         // the type tag found in the input
}

func (x *Unknown) exprNode() {}

func (x *Unknown) Pos() token.Position { return x.From }
func (x *Unknown) End() token.Position { return x.From }
func (x *Unknown) String() string      { return "<" + x.TypeName + ">" }
