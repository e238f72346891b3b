package certify

import "github.com/HyperLuna/jexpr/ast"

// walker performs the single depth-first certification pass. It owns the
// scope list for the duration of one Certify call; nothing escapes it.
//
// Every visit returns the (possibly rewritten) node together with a
// changed flag. A parent allocates a replacement node only when at least
// one child changed; otherwise it returns the original node, so callers
// can detect no-op regions by reference identity.
type walker struct {
	cfg   *config
	scope []string
}

func (w *walker) expr(node ast.Expr) (ast.Expr, bool, error) {
	if err := w.cfg.admit(node); err != nil {
		return nil, false, err
	}

	switch n := node.(type) {
	case *ast.Ident:
		return w.resolve(n)

	case *ast.Literal, *ast.This, *ast.TemplateElement:
		return node, false, nil

	case *ast.Array:
		elts, changed, err := w.exprList(n.Elts)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Array{Lbrack: n.Lbrack, Elts: elts, Rbrack: n.Rbrack}, true, nil

	case *ast.ArrayPattern:
		elts, changed, err := w.exprList(n.Elts)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.ArrayPattern{Lbrack: n.Lbrack, Elts: elts, Rbrack: n.Rbrack}, true, nil

	case *ast.Object:
		props, changed, err := w.exprList(n.Props)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Object{Lbrace: n.Lbrace, Props: props, Rbrace: n.Rbrace}, true, nil

	case *ast.ObjectPattern:
		props, changed, err := w.exprList(n.Props)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.ObjectPattern{Lbrace: n.Lbrace, Props: props, Rbrace: n.Rbrace}, true, nil

	case *ast.Property:
		return w.property(n)

	case *ast.Spread:
		x, changed, err := w.expr(n.X)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Spread{Ellipsis: n.Ellipsis, X: x}, true, nil

	case *ast.Rest:
		target, changed, err := w.expr(n.Target)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Rest{Ellipsis: n.Ellipsis, Target: target}, true, nil

	case *ast.Default:
		target, tc, err := w.expr(n.Target)
		if err != nil {
			return nil, false, err
		}
		value, vc, err := w.expr(n.Value)
		if err != nil {
			return nil, false, err
		}
		if !tc && !vc {
			return n, false, nil
		}
		return &ast.Default{Target: target, Value: value}, true, nil

	case *ast.Member:
		return w.member(n)

	case *ast.Chain:
		x, changed, err := w.expr(n.X)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Chain{X: x}, true, nil

	case *ast.Unary:
		x, changed, err := w.expr(n.X)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Unary{OpPos: n.OpPos, Op: n.Op, X: x}, true, nil

	case *ast.Binary:
		x, xc, err := w.expr(n.X)
		if err != nil {
			return nil, false, err
		}
		y, yc, err := w.expr(n.Y)
		if err != nil {
			return nil, false, err
		}
		if !xc && !yc {
			return n, false, nil
		}
		return &ast.Binary{X: x, OpPos: n.OpPos, Op: n.Op, Y: y}, true, nil

	case *ast.Logical:
		x, xc, err := w.expr(n.X)
		if err != nil {
			return nil, false, err
		}
		y, yc, err := w.expr(n.Y)
		if err != nil {
			return nil, false, err
		}
		if !xc && !yc {
			return n, false, nil
		}
		return &ast.Logical{X: x, OpPos: n.OpPos, Op: n.Op, Y: y}, true, nil

	case *ast.Update:
		x, changed, err := w.expr(n.X)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Update{OpPos: n.OpPos, Op: n.Op, Prefix: n.Prefix, X: x}, true, nil

	case *ast.Assign:
		left, lc, err := w.expr(n.Left)
		if err != nil {
			return nil, false, err
		}
		right, rc, err := w.expr(n.Right)
		if err != nil {
			return nil, false, err
		}
		if !lc && !rc {
			return n, false, nil
		}
		return &ast.Assign{Left: left, OpPos: n.OpPos, Op: n.Op, Right: right}, true, nil

	case *ast.Cond:
		test, tc, err := w.expr(n.Test)
		if err != nil {
			return nil, false, err
		}
		then, cc, err := w.expr(n.Then)
		if err != nil {
			return nil, false, err
		}
		els, ec, err := w.expr(n.Else)
		if err != nil {
			return nil, false, err
		}
		if !tc && !cc && !ec {
			return n, false, nil
		}
		return &ast.Cond{
			Test: test, Question: n.Question,
			Then: then, Colon: n.Colon, Else: els,
		}, true, nil

	case *ast.Seq:
		exprs, changed, err := w.exprList(n.Exprs)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Seq{Exprs: exprs}, true, nil

	case *ast.Template:
		exprs, changed, err := w.exprList(n.Exprs)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		return &ast.Template{Backtick: n.Backtick, Elements: n.Elements, Exprs: exprs}, true, nil

	case *ast.TaggedTemplate:
		tag, tc, err := w.expr(n.Tag)
		if err != nil {
			return nil, false, err
		}
		quasi, qc, err := w.expr(n.Quasi)
		if err != nil {
			return nil, false, err
		}
		if !tc && !qc {
			return n, false, nil
		}
		return &ast.TaggedTemplate{Tag: tag, Quasi: quasi.(*ast.Template)}, true, nil

	case *ast.Arrow:
		return w.arrow(n)

	case *ast.Call:
		fun, fc, err := w.expr(n.Fun)
		if err != nil {
			return nil, false, err
		}
		args, ac, err := w.exprList(n.Args)
		if err != nil {
			return nil, false, err
		}
		if !fc && !ac {
			return n, false, nil
		}
		return &ast.Call{
			Fun: fun, Lparen: n.Lparen, Args: args,
			Rparen: n.Rparen, Optional: n.Optional,
		}, true, nil

	case *ast.New:
		fun, fc, err := w.expr(n.Fun)
		if err != nil {
			return nil, false, err
		}
		args, ac, err := w.exprList(n.Args)
		if err != nil {
			return nil, false, err
		}
		if !fc && !ac {
			return n, false, nil
		}
		return &ast.New{NewPos: n.NewPos, Fun: fun, Args: args, Rparen: n.Rparen}, true, nil

	default:
		// admit rejects everything else before we get here
		return nil, false, newPolicyError(node, "unknown syntax kind %q", ast.Type(node))
	}
}

// exprList visits each non-nil element (nil entries are array holes) and
// allocates a replacement slice only when at least one element changed.
func (w *walker) exprList(list []ast.Expr) ([]ast.Expr, bool, error) {
	var out []ast.Expr
	for i, e := range list {
		if e == nil {
			if out != nil {
				out = append(out, nil)
			}
			continue
		}
		next, changed, err := w.expr(e)
		if err != nil {
			return nil, false, err
		}
		if changed && out == nil {
			out = make([]ast.Expr, 0, len(list))
			out = append(out, list[:i]...)
		}
		if out != nil {
			out = append(out, next)
		}
	}
	if out == nil {
		return list, false, nil
	}
	return out, true, nil
}

// property enforces the object entry rules: a private name key is always
// a hard failure, a non-computed key is a fixed name that passes through
// unexamined, and the value is always visited. A shorthand entry whose
// value was rewritten can no longer be rendered in shorthand form.
func (w *walker) property(n *ast.Property) (ast.Expr, bool, error) {
	if _, ok := n.Key.(*ast.PrivateName); ok {
		return nil, false, newPolicyError(n.Key, "private names are not supported outside a class body")
	}
	key, kc := n.Key, false
	if n.Computed {
		var err error
		key, kc, err = w.expr(n.Key)
		if err != nil {
			return nil, false, err
		}
	}
	value, vc, err := w.expr(n.Value)
	if err != nil {
		return nil, false, err
	}
	if !kc && !vc {
		return n, false, nil
	}
	return &ast.Property{
		Key:       key,
		Value:     value,
		Computed:  n.Computed,
		Shorthand: n.Shorthand && !vc,
	}, true, nil
}

// member enforces the property access rules: a super object or a private
// name property is always a hard failure, and the property is visited
// only for computed (bracket) accesses.
func (w *walker) member(n *ast.Member) (ast.Expr, bool, error) {
	if _, ok := n.X.(*ast.Super); ok {
		return nil, false, newPolicyError(n.X, "super is not supported outside a class body")
	}
	if _, ok := n.Prop.(*ast.PrivateName); ok {
		return nil, false, newPolicyError(n.Prop, "private names are not supported outside a class body")
	}
	x, xc, err := w.expr(n.X)
	if err != nil {
		return nil, false, err
	}
	prop, pc := n.Prop, false
	if n.Computed {
		prop, pc, err = w.expr(n.Prop)
		if err != nil {
			return nil, false, err
		}
	}
	if !xc && !pc {
		return n, false, nil
	}
	return &ast.Member{X: x, Prop: prop, Computed: n.Computed, Optional: n.Optional}, true, nil
}

// arrow certifies an arrow function. The body must be a single
// expression; the parameter patterns are scanned into scope first and
// then themselves visited, so default-value expressions are certified
// under the extended scope like any other sub-expression. The scope is
// truncated back to its pre-entry length on the way out.
func (w *walker) arrow(n *ast.Arrow) (ast.Expr, bool, error) {
	body, ok := n.Body.(ast.Expr)
	if !ok {
		return nil, false, newPolicyError(n, "arrow functions must have a single expression body")
	}

	depth := len(w.scope)
	for _, p := range n.Params {
		if err := scanPattern(p, &w.scope); err != nil {
			return nil, false, err
		}
	}

	params, pc, err := w.exprList(n.Params)
	if err != nil {
		return nil, false, err
	}
	newBody, bc, err := w.expr(body)
	if err != nil {
		return nil, false, err
	}
	w.scope = w.scope[:depth]

	if !pc && !bc {
		return n, false, nil
	}
	return &ast.Arrow{Start: n.Start, Params: params, Body: newBody, Async: n.Async}, true, nil
}

// resolve decides the fate of a leaf identifier. Bound names pass
// through unchanged. Free names fail when no global binding is
// configured, and are otherwise rewritten into a non-computed property
// access on the global binding. This is the only place the walker
// introduces a node of a different kind than its input.
func (w *walker) resolve(n *ast.Ident) (ast.Expr, bool, error) {
	if contains(w.scope, n.Name) {
		return n, false, nil
	}
	if w.cfg.global == "" {
		return nil, false, newUnresolvedError(n)
	}
	var obj ast.Expr
	if w.cfg.global == Self {
		obj = &ast.This{ThisPos: n.NamePos}
	} else {
		obj = &ast.Ident{NamePos: n.NamePos, Name: w.cfg.global}
	}
	return &ast.Member{
		X:    obj,
		Prop: &ast.Ident{NamePos: n.NamePos, Name: n.Name},
	}, true, nil
}
