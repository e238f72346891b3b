// jexpr certifies untrusted ECMAScript expression trees.
//
// It reads ESTree JSON, the interchange format produced by standard
// ECMAScript parsers, checks it against a configurable syntax policy,
// rewrites free identifiers onto a designated global binding, and
// prints the result as callable function source or as rewritten JSON.
//
// Usage:
//
//	# Certify an expression from a parser dump
//	jexpr check expr.json --param order --param g --global g
//
//	# Read from stdin, resolve free identifiers onto `this`
//	cat expr.json | jexpr check --this
//
//	# Load switch settings from a YAML policy file
//	jexpr check expr.json --policy policy.yaml
//
//	# Re-certify whenever the input file changes
//	jexpr check expr.json --watch
package main

func main() {
	Execute()
}
