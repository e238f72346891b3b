package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
// Children are visited left to right in each kind's natural order, the
// same order the certifier uses.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Ident, *PrivateName, *Literal, *This, *Super, *TemplateElement,
		*MetaProperty, *Unknown:
		// No children

	case *Array:
		for _, e := range n.Elts {
			if e != nil {
				Walk(v, e)
			}
		}
	case *Object:
		for _, p := range n.Props {
			Walk(v, p)
		}
	case *Property:
		if n.Key != nil {
			Walk(v, n.Key)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *Spread:
		Walk(v, n.X)
	case *Member:
		Walk(v, n.X)
		if n.Prop != nil {
			Walk(v, n.Prop)
		}
	case *Chain:
		Walk(v, n.X)
	case *Unary:
		Walk(v, n.X)
	case *Binary:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *Logical:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *Update:
		Walk(v, n.X)
	case *Assign:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *Cond:
		Walk(v, n.Test)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *Seq:
		for _, e := range n.Exprs {
			Walk(v, e)
		}
	case *Template:
		for i, el := range n.Elements {
			Walk(v, el)
			if i < len(n.Exprs) {
				Walk(v, n.Exprs[i])
			}
		}
	case *TaggedTemplate:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *Arrow:
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *Call:
		Walk(v, n.Fun)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *New:
		Walk(v, n.Fun)
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *ObjectPattern:
		for _, p := range n.Props {
			Walk(v, p)
		}
	case *ArrayPattern:
		for _, e := range n.Elts {
			if e != nil {
				Walk(v, e)
			}
		}
	case *Rest:
		Walk(v, n.Target)
	case *Default:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *Func:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *Class:
		if n.Name != nil {
			Walk(v, n.Name)
		}
	case *Yield:
		if n.X != nil {
			Walk(v, n.X)
		}
	case *Await:
		Walk(v, n.X)
	case *ImportCall:
		Walk(v, n.Source)
	case *Block:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		stopped := false
		Inspect(root, func(n Node) bool {
			if stopped {
				return false
			}
			if !yield(n) {
				stopped = true
				return false
			}
			return true
		})
	}
}
