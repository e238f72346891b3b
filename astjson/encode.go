package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/HyperLuna/jexpr/ast"
)

// Encode renders an expression tree as ESTree JSON. Positions are not
// emitted: rewritten trees carry synthesized nodes without meaningful
// locations.
func Encode(node ast.Node) ([]byte, error) {
	obj, err := encodeNode(node)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(obj, "", "  ")
}

func encodeNode(node ast.Node) (map[string]any, error) {
	if node == nil {
		return nil, fmt.Errorf("astjson: missing node")
	}
	out := map[string]any{"type": ast.Type(node)}

	switch n := node.(type) {
	case *ast.Ident:
		out["name"] = n.Name

	case *ast.PrivateName:
		out["name"] = n.Name

	case *ast.Literal:
		out["value"] = n.Value
		if n.Raw != "" {
			out["raw"] = n.Raw
		}

	case *ast.This, *ast.Super:
		// type tag only

	case *ast.Array:
		elts, err := encodeList(n.Elts)
		if err != nil {
			return nil, err
		}
		out["elements"] = elts

	case *ast.ArrayPattern:
		elts, err := encodeList(n.Elts)
		if err != nil {
			return nil, err
		}
		out["elements"] = elts

	case *ast.Object:
		props, err := encodeList(n.Props)
		if err != nil {
			return nil, err
		}
		out["properties"] = props

	case *ast.ObjectPattern:
		props, err := encodeList(n.Props)
		if err != nil {
			return nil, err
		}
		out["properties"] = props

	case *ast.Property:
		if err := encodeInto(out, "key", n.Key); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "value", n.Value); err != nil {
			return nil, err
		}
		out["computed"] = n.Computed
		out["shorthand"] = n.Shorthand

	case *ast.Spread:
		if err := encodeInto(out, "argument", n.X); err != nil {
			return nil, err
		}

	case *ast.Rest:
		if err := encodeInto(out, "argument", n.Target); err != nil {
			return nil, err
		}

	case *ast.Default:
		if err := encodeInto(out, "left", n.Target); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "right", n.Value); err != nil {
			return nil, err
		}

	case *ast.Member:
		if err := encodeInto(out, "object", n.X); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "property", n.Prop); err != nil {
			return nil, err
		}
		out["computed"] = n.Computed
		out["optional"] = n.Optional

	case *ast.Chain:
		if err := encodeInto(out, "expression", n.X); err != nil {
			return nil, err
		}

	case *ast.Unary:
		out["operator"] = n.Op
		out["prefix"] = true
		if err := encodeInto(out, "argument", n.X); err != nil {
			return nil, err
		}

	case *ast.Binary:
		out["operator"] = n.Op
		if err := encodeInto(out, "left", n.X); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "right", n.Y); err != nil {
			return nil, err
		}

	case *ast.Logical:
		out["operator"] = n.Op
		if err := encodeInto(out, "left", n.X); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "right", n.Y); err != nil {
			return nil, err
		}

	case *ast.Update:
		out["operator"] = n.Op
		out["prefix"] = n.Prefix
		if err := encodeInto(out, "argument", n.X); err != nil {
			return nil, err
		}

	case *ast.Assign:
		out["operator"] = n.Op
		if err := encodeInto(out, "left", n.Left); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "right", n.Right); err != nil {
			return nil, err
		}

	case *ast.Cond:
		if err := encodeInto(out, "test", n.Test); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "consequent", n.Then); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "alternate", n.Else); err != nil {
			return nil, err
		}

	case *ast.Seq:
		exprs, err := encodeList(n.Exprs)
		if err != nil {
			return nil, err
		}
		out["expressions"] = exprs

	case *ast.Template:
		quasis := make([]any, 0, len(n.Elements))
		for _, el := range n.Elements {
			quasis = append(quasis, map[string]any{
				"type":  "TemplateElement",
				"value": map[string]any{"raw": el.Raw, "cooked": el.Cooked},
				"tail":  el.Tail,
			})
		}
		out["quasis"] = quasis
		exprs, err := encodeList(n.Exprs)
		if err != nil {
			return nil, err
		}
		out["expressions"] = exprs

	case *ast.TaggedTemplate:
		if err := encodeInto(out, "tag", n.Tag); err != nil {
			return nil, err
		}
		if err := encodeInto(out, "quasi", n.Quasi); err != nil {
			return nil, err
		}

	case *ast.Arrow:
		params, err := encodeList(n.Params)
		if err != nil {
			return nil, err
		}
		out["params"] = params
		out["async"] = n.Async
		body, ok := n.Body.(ast.Expr)
		if !ok {
			return nil, fmt.Errorf("astjson: cannot encode arrow statement body")
		}
		out["expression"] = true
		if err := encodeInto(out, "body", body); err != nil {
			return nil, err
		}

	case *ast.Call:
		if err := encodeInto(out, "callee", n.Fun); err != nil {
			return nil, err
		}
		args, err := encodeList(n.Args)
		if err != nil {
			return nil, err
		}
		out["arguments"] = args
		out["optional"] = n.Optional

	case *ast.New:
		if err := encodeInto(out, "callee", n.Fun); err != nil {
			return nil, err
		}
		args, err := encodeList(n.Args)
		if err != nil {
			return nil, err
		}
		out["arguments"] = args

	default:
		return nil, fmt.Errorf("astjson: cannot encode %s", ast.Type(node))
	}

	return out, nil
}

func encodeInto(out map[string]any, field string, node ast.Node) error {
	obj, err := encodeNode(node)
	if err != nil {
		return err
	}
	out[field] = obj
	return nil
}

// encodeList preserves nil entries, which represent array holes.
func encodeList(list []ast.Expr) ([]any, error) {
	out := make([]any, len(list))
	for i, e := range list {
		if e == nil {
			continue
		}
		obj, err := encodeNode(e)
		if err != nil {
			return nil, err
		}
		out[i] = obj
	}
	return out, nil
}
