// Package certify normalizes untrusted expression trees into a
// restricted, closed subset with no free variables.
//
// Certify walks a tree exactly once, depth first. On entry to each node
// the policy table decides admission; on exit each identifier leaf is
// either confirmed bound by an enclosing parameter list or rewritten
// into a property access on the designated global binding. Any rejection
// anywhere aborts the call with a structured error and no partial
// result. Unchanged subtrees are returned by reference, so callers can
// detect no-op regions with pointer identity.
package certify

import (
	"github.com/HyperLuna/jexpr/ast"
	"github.com/hashicorp/go-multierror"
)

// Certify validates and rewrites one expression tree. params is the
// ordered list of top-level bound names; each must be a distinct, valid
// identifier. The returned tree shares every unmodified subtree with the
// input and contains no disallowed kinds, no disallowed operators, and
// no free identifiers.
func Certify(expr ast.Expr, params []string, opts ...Option) (ast.Expr, error) {
	cfg := newConfig(opts...)
	if err := validate(cfg, expr, params); err != nil {
		return nil, err
	}
	w := &walker{
		cfg:   cfg,
		scope: append(make([]string, 0, len(params)), params...),
	}
	out, _, err := w.expr(expr)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// validate checks the parameter list and global binding before any
// traversal begins. All parameter list faults are reported together.
func validate(cfg *config, expr ast.Expr, params []string) error {
	if expr == nil {
		return newConfigError("an expression is required")
	}

	var result *multierror.Error
	seen := make(map[string]bool, len(params))
	for _, name := range params {
		if !validIdent(name) {
			result = multierror.Append(result, &Error{
				Kind:    ErrConfig,
				Message: "invalid parameter name " + quote(name),
				Name:    name,
			})
			continue
		}
		if seen[name] {
			result = multierror.Append(result, &Error{
				Kind:    ErrConfig,
				Message: "duplicate parameter name " + quote(name),
				Name:    name,
			})
		}
		seen[name] = true
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	if cfg.global != "" && cfg.global != Self {
		if !validIdent(cfg.global) {
			return &Error{
				Kind:    ErrConfig,
				Message: "invalid global binding name " + quote(cfg.global),
				Name:    cfg.global,
			}
		}
		if len(params) > 0 && !contains(params, cfg.global) {
			return &Error{
				Kind:    ErrConfig,
				Message: "global binding " + quote(cfg.global) + " is not a parameter",
				Name:    cfg.global,
			}
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + s + `"`
}
