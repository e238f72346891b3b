// Package astjson converts between ESTree JSON, the interchange format
// produced by standard ECMAScript parsers, and the certifier's syntax
// tree.
//
// Decoding is deliberately forgiving about node kinds: an unrecognized
// type tag becomes an ast.Unknown node rather than a decode error, so
// that the certifier reports a uniform policy violation for it.
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/HyperLuna/jexpr/ast"
	"github.com/HyperLuna/jexpr/internal/token"
)

// jsNode mirrors the union of ESTree node shapes. Fields whose meaning
// varies by node kind (value, expression, body) stay raw and are decoded
// contextually.
type jsNode struct {
	Type  string `json:"type"`
	Start int    `json:"start"`
	Loc   *jsLoc `json:"loc"`

	Name       string          `json:"name"`
	Value      json.RawMessage `json:"value"`
	Raw        string          `json:"raw"`
	Elements   []*jsNode       `json:"elements"`
	Properties []*jsNode       `json:"properties"`
	Key        *jsNode         `json:"key"`
	Object     *jsNode         `json:"object"`
	Property   *jsNode         `json:"property"`
	Computed   bool            `json:"computed"`
	Shorthand  bool            `json:"shorthand"`
	Argument   *jsNode         `json:"argument"`
	Operator   string          `json:"operator"`
	Prefix     bool            `json:"prefix"`
	Left       *jsNode         `json:"left"`
	Right      *jsNode         `json:"right"`
	Test       *jsNode         `json:"test"`
	Consequent *jsNode         `json:"consequent"`
	Alternate  *jsNode         `json:"alternate"`
	Exprs      []*jsNode       `json:"expressions"`
	Expression json.RawMessage `json:"expression"`
	Quasis     []*jsNode       `json:"quasis"`
	Quasi      *jsNode         `json:"quasi"`
	Tag        *jsNode         `json:"tag"`
	Params     []*jsNode       `json:"params"`
	Body       json.RawMessage `json:"body"`
	Async      bool            `json:"async"`
	Callee     *jsNode         `json:"callee"`
	Arguments  []*jsNode       `json:"arguments"`
	Optional   bool            `json:"optional"`
	Tail       bool            `json:"tail"`
	Meta       *jsNode         `json:"meta"`
	Delegate   bool            `json:"delegate"`
	Source     *jsNode         `json:"source"`
}

type jsLoc struct {
	Start jsPoint `json:"start"`
}

type jsPoint struct {
	Line   int `json:"line"`   // 1-indexed
	Column int `json:"column"` // 0-indexed
}

// Decode parses ESTree JSON into an expression tree. A Program wrapper
// holding a single expression statement is unwrapped, so the direct
// output of a standard parser can be fed in whole.
func Decode(data []byte) (ast.Expr, error) {
	var root jsNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("astjson: %w", err)
	}
	n := &root
	if n.Type == "Program" {
		var body []*jsNode
		if err := json.Unmarshal(n.Body, &body); err != nil {
			return nil, fmt.Errorf("astjson: invalid program body: %w", err)
		}
		if len(body) != 1 {
			return nil, fmt.Errorf("astjson: expected a single expression, found %d statements", len(body))
		}
		n = body[0]
	}
	if n.Type == "ExpressionStatement" {
		var inner jsNode
		if err := json.Unmarshal(n.Expression, &inner); err != nil {
			return nil, fmt.Errorf("astjson: invalid expression statement: %w", err)
		}
		n = &inner
	}
	return decodeExpr(n)
}

func (n *jsNode) pos() token.Position {
	p := token.Position{Char: n.Start, Known: true}
	if n.Loc != nil {
		p.Line = n.Loc.Start.Line - 1
		p.Column = n.Loc.Start.Column
	}
	return p
}

func decodeExpr(n *jsNode) (ast.Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("astjson: missing node")
	}
	switch n.Type {
	case "Identifier":
		return &ast.Ident{NamePos: n.pos(), Name: n.Name}, nil

	case "PrivateIdentifier":
		return &ast.PrivateName{HashPos: n.pos(), Name: n.Name}, nil

	case "Literal":
		lit := &ast.Literal{ValuePos: n.pos(), Raw: n.Raw}
		if len(n.Value) > 0 {
			var v any
			if err := json.Unmarshal(n.Value, &v); err != nil {
				return nil, fmt.Errorf("astjson: invalid literal value: %w", err)
			}
			// Regex literals encode their value as an object; only the
			// raw text matters for those.
			if _, isObject := v.(map[string]any); !isObject {
				lit.Value = v
			}
		}
		return lit, nil

	case "ThisExpression":
		return &ast.This{ThisPos: n.pos()}, nil

	case "Super":
		return &ast.Super{SuperPos: n.pos()}, nil

	case "ArrayExpression":
		elts, err := decodeList(n.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.Array{Lbrack: n.pos(), Elts: elts}, nil

	case "ObjectExpression":
		props, err := decodeList(n.Properties)
		if err != nil {
			return nil, err
		}
		return &ast.Object{Lbrace: n.pos(), Props: props}, nil

	case "Property":
		key, err := decodeExpr(n.Key)
		if err != nil {
			return nil, err
		}
		var value jsNode
		if err := json.Unmarshal(n.Value, &value); err != nil {
			return nil, fmt.Errorf("astjson: invalid property value: %w", err)
		}
		val, err := decodeExpr(&value)
		if err != nil {
			return nil, err
		}
		return &ast.Property{
			Key:       key,
			Value:     val,
			Computed:  n.Computed,
			Shorthand: n.Shorthand,
		}, nil

	case "SpreadElement":
		x, err := decodeExpr(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.Spread{Ellipsis: n.pos(), X: x}, nil

	case "MemberExpression":
		obj, err := decodeExpr(n.Object)
		if err != nil {
			return nil, err
		}
		prop, err := decodeExpr(n.Property)
		if err != nil {
			return nil, err
		}
		return &ast.Member{X: obj, Prop: prop, Computed: n.Computed, Optional: n.Optional}, nil

	case "ChainExpression":
		var inner jsNode
		if err := json.Unmarshal(n.Expression, &inner); err != nil {
			return nil, fmt.Errorf("astjson: invalid chain expression: %w", err)
		}
		x, err := decodeExpr(&inner)
		if err != nil {
			return nil, err
		}
		return &ast.Chain{X: x}, nil

	case "UnaryExpression":
		x, err := decodeExpr(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{OpPos: n.pos(), Op: n.Operator, X: x}, nil

	case "BinaryExpression":
		x, y, err := decodePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{X: x, Op: n.Operator, Y: y}, nil

	case "LogicalExpression":
		x, y, err := decodePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Logical{X: x, Op: n.Operator, Y: y}, nil

	case "UpdateExpression":
		x, err := decodeExpr(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.Update{OpPos: n.pos(), Op: n.Operator, Prefix: n.Prefix, X: x}, nil

	case "AssignmentExpression":
		x, y, err := decodePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Left: x, Op: n.Operator, Right: y}, nil

	case "ConditionalExpression":
		test, err := decodeExpr(n.Test)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(n.Consequent)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(n.Alternate)
		if err != nil {
			return nil, err
		}
		return &ast.Cond{Test: test, Then: then, Else: els}, nil

	case "SequenceExpression":
		exprs, err := decodeList(n.Exprs)
		if err != nil {
			return nil, err
		}
		return &ast.Seq{Exprs: exprs}, nil

	case "TemplateLiteral":
		return decodeTemplate(n)

	case "TaggedTemplateExpression":
		tag, err := decodeExpr(n.Tag)
		if err != nil {
			return nil, err
		}
		quasi, err := decodeTemplate(n.Quasi)
		if err != nil {
			return nil, err
		}
		return &ast.TaggedTemplate{Tag: tag, Quasi: quasi.(*ast.Template)}, nil

	case "ArrowFunctionExpression":
		params, err := decodeList(n.Params)
		if err != nil {
			return nil, err
		}
		var bodyNode jsNode
		if err := json.Unmarshal(n.Body, &bodyNode); err != nil {
			return nil, fmt.Errorf("astjson: invalid arrow body: %w", err)
		}
		var body ast.Node
		if bodyNode.Type == "BlockStatement" {
			body = &ast.Block{Lbrace: bodyNode.pos()}
		} else {
			body, err = decodeExpr(&bodyNode)
			if err != nil {
				return nil, err
			}
		}
		return &ast.Arrow{Start: n.pos(), Params: params, Body: body, Async: n.Async}, nil

	case "CallExpression":
		fun, err := decodeExpr(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeList(n.Arguments)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Fun: fun, Args: args, Optional: n.Optional}, nil

	case "NewExpression":
		fun, err := decodeExpr(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeList(n.Arguments)
		if err != nil {
			return nil, err
		}
		return &ast.New{NewPos: n.pos(), Fun: fun, Args: args}, nil

	case "ObjectPattern":
		props, err := decodeList(n.Properties)
		if err != nil {
			return nil, err
		}
		return &ast.ObjectPattern{Lbrace: n.pos(), Props: props}, nil

	case "ArrayPattern":
		elts, err := decodeList(n.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayPattern{Lbrack: n.pos(), Elts: elts}, nil

	case "RestElement":
		target, err := decodeExpr(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.Rest{Ellipsis: n.pos(), Target: target}, nil

	case "AssignmentPattern":
		target, value, err := decodePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Default{Target: target, Value: value}, nil

	case "FunctionExpression", "FunctionDeclaration":
		fn := &ast.Func{FuncPos: n.pos(), Body: &ast.Block{}}
		return fn, nil

	case "ClassExpression", "ClassDeclaration":
		return &ast.Class{ClassPos: n.pos()}, nil

	case "MetaProperty":
		meta, prop, err := decodePair(n.Meta, n.Property)
		if err != nil {
			return nil, err
		}
		metaIdent, ok := meta.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("astjson: invalid meta property")
		}
		propIdent, ok := prop.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("astjson: invalid meta property")
		}
		return &ast.MetaProperty{Meta: metaIdent, Prop: propIdent}, nil

	case "YieldExpression":
		y := &ast.Yield{YieldPos: n.pos(), Delegate: n.Delegate}
		if n.Argument != nil {
			x, err := decodeExpr(n.Argument)
			if err != nil {
				return nil, err
			}
			y.X = x
		}
		return y, nil

	case "AwaitExpression":
		x, err := decodeExpr(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.Await{AwaitPos: n.pos(), X: x}, nil

	case "ImportExpression":
		src, err := decodeExpr(n.Source)
		if err != nil {
			return nil, err
		}
		return &ast.ImportCall{ImportPos: n.pos(), Source: src}, nil

	default:
		return &ast.Unknown{From: n.pos(), TypeName: n.Type}, nil
	}
}

func decodePair(left, right *jsNode) (ast.Expr, ast.Expr, error) {
	x, err := decodeExpr(left)
	if err != nil {
		return nil, nil, err
	}
	y, err := decodeExpr(right)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// decodeList preserves nil entries, which represent array holes.
func decodeList(list []*jsNode) ([]ast.Expr, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]ast.Expr, len(list))
	for i, n := range list {
		if n == nil {
			continue
		}
		e, err := decodeExpr(n)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeTemplate(n *jsNode) (ast.Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("astjson: missing template literal")
	}
	tpl := &ast.Template{Backtick: n.pos()}
	for _, q := range n.Quasis {
		var value struct {
			Raw    string `json:"raw"`
			Cooked string `json:"cooked"`
		}
		if len(q.Value) > 0 {
			if err := json.Unmarshal(q.Value, &value); err != nil {
				return nil, fmt.Errorf("astjson: invalid template element: %w", err)
			}
		}
		tpl.Elements = append(tpl.Elements, &ast.TemplateElement{
			StartPos: q.pos(),
			Raw:      value.Raw,
			Cooked:   value.Cooked,
			Tail:     q.Tail,
		})
	}
	exprs, err := decodeList(n.Exprs)
	if err != nil {
		return nil, err
	}
	tpl.Exprs = exprs
	return tpl, nil
}
