package certify

import "github.com/HyperLuna/jexpr/ast"

// admit decides whether a node kind may appear at all under the active
// policy. It is consulted on entry to every node, before any children
// are visited. Returning a non-nil error aborts the whole traversal.
func (cfg *config) admit(node ast.Node) *Error {
	switch n := node.(type) {
	case *ast.Ident, *ast.Literal, *ast.Array, *ast.Object, *ast.Property,
		*ast.Spread, *ast.Member, *ast.Chain, *ast.Logical, *ast.Cond,
		*ast.Seq, *ast.Template, *ast.TemplateElement,
		*ast.ObjectPattern, *ast.ArrayPattern, *ast.Rest, *ast.Default:
		return nil

	case *ast.Arrow:
		if !cfg.policy.AllowArrows {
			return newPolicyError(n, "arrow functions are not allowed")
		}
		return nil

	case *ast.Unary:
		if n.Op == "delete" && !cfg.policy.AllowMutation {
			return newOperatorError(n, n.Op, "the delete operator is not allowed")
		}
		if n.Op == "typeof" && !cfg.policy.AllowInspection {
			return newOperatorError(n, n.Op, "the typeof operator is not allowed")
		}
		return nil

	case *ast.Binary:
		if (n.Op == "in" || n.Op == "instanceof") && !cfg.policy.AllowInspection {
			return newOperatorError(n, n.Op, "the %s operator is not allowed", n.Op)
		}
		return nil

	case *ast.Update:
		if !cfg.policy.AllowMutation {
			return newOperatorError(n, n.Op, "update expressions are not allowed")
		}
		return nil

	case *ast.Assign:
		if !cfg.policy.AllowMutation {
			return newOperatorError(n, n.Op, "assignment is not allowed")
		}
		return nil

	case *ast.Call:
		if !cfg.policy.AllowCalls {
			return newPolicyError(n, "function calls are not allowed")
		}
		return nil

	case *ast.New:
		if !cfg.policy.AllowCalls {
			return newPolicyError(n, "constructor calls are not allowed")
		}
		return nil

	case *ast.TaggedTemplate:
		if !cfg.policy.AllowCalls {
			return newPolicyError(n, "tagged templates are not allowed")
		}
		return nil

	case *ast.This:
		if !cfg.policy.AllowThis {
			return newPolicyError(n, "this is not allowed")
		}
		return nil

	// Permanently unsupported, regardless of configuration.
	case *ast.Func:
		return newPolicyError(n, "function expressions are not supported")
	case *ast.Class:
		return newPolicyError(n, "class expressions are not supported")
	case *ast.MetaProperty:
		return newPolicyError(n, "meta properties are not supported")
	case *ast.Yield:
		return newPolicyError(n, "yield expressions are not supported")
	case *ast.Await:
		return newPolicyError(n, "await expressions are not supported")
	case *ast.ImportCall:
		return newPolicyError(n, "dynamic import is not supported")
	case *ast.Super:
		return newPolicyError(n, "super is not supported outside a class body")
	case *ast.PrivateName:
		return newPolicyError(n, "private names are not supported outside a class body")
	case *ast.Block:
		return newPolicyError(n, "statement blocks are not supported")

	default:
		return newPolicyError(node, "unknown syntax kind %q", ast.Type(node))
	}
}
