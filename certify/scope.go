package certify

import (
	"unicode"

	"github.com/HyperLuna/jexpr/ast"
)

// scanPattern appends every name bound by a parameter pattern to scope,
// left to right, outer to inner. Default-value expressions are not
// binding sites; they are certified later when the walker descends into
// the parameter list itself.
func scanPattern(pattern ast.Expr, scope *[]string) *Error {
	switch p := pattern.(type) {
	case *ast.Ident:
		*scope = append(*scope, p.Name)
		return nil

	case *ast.ObjectPattern:
		for _, entry := range p.Props {
			switch e := entry.(type) {
			case *ast.Rest:
				if err := scanPattern(e.Target, scope); err != nil {
					return err
				}
			case *ast.Property:
				if err := scanPattern(e.Value, scope); err != nil {
					return err
				}
			default:
				return newPatternError(entry, "unexpected %s in object pattern", ast.Type(entry))
			}
		}
		return nil

	case *ast.ArrayPattern:
		for _, elt := range p.Elts {
			if elt == nil {
				continue // elision
			}
			if err := scanPattern(elt, scope); err != nil {
				return err
			}
		}
		return nil

	case *ast.Rest:
		return scanPattern(p.Target, scope)

	case *ast.Default:
		return scanPattern(p.Target, scope)

	default:
		return newPatternError(pattern, "unexpected %s in binding position", ast.Type(pattern))
	}
}

// reservedWords are names that cannot be used as parameter names.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
}

// validIdent reports whether name is a syntactically valid, non-reserved
// identifier.
func validIdent(name string) bool {
	if name == "" || reservedWords[name] {
		return false
	}
	for i, r := range name {
		if r == '$' || r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
