// Package extract recovers the translation keys a parsed file
// references. Three shapes carry keys: translator calls with a literal
// first argument, t directives with a literal expression, and path
// attributes on i18n elements.
package extract

import (
	"strconv"

	"github.com/keylint-dev/keylint/internal/ast"
)

// translatorNames are the call names recognized as catalog lookups.
var translatorNames = map[string]bool{
	"t":   true,
	"$t":  true,
	"tc":  true,
	"$tc": true,
}

// Keys returns the deduplicated keys referenced by prog. The template
// sub-tree is walked first, the script tree second; both passes share
// one enter rule and one result set, so revisiting a node is harmless.
func Keys(prog *ast.Program) []string {
	if prog == nil {
		return nil
	}

	set := make(map[string]struct{})
	enter := func(node ast.Node) {
		visit(node, set)
	}

	if prog.Template != nil {
		ast.Walk(prog.Template, enter, nil)
	}
	ast.Walk(prog, enter, nil)

	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	return out
}

// visit applies the extraction rules to one node. Rules are mutually
// exclusive by node kind; every other kind is ignored.
func visit(node ast.Node, set map[string]struct{}) {
	switch n := node.(type) {
	case *ast.CallExpression:
		if !translatorNames[calleeName(n.Callee)] || len(n.Arguments) == 0 {
			return
		}
		// Only the first argument can carry the key. Non-literal
		// arguments are dynamic keys and cannot be resolved
		// statically.
		lit, ok := n.Arguments[0].(*ast.Literal)
		if !ok {
			return
		}
		if key, ok := literalKey(lit.Value); ok {
			set[key] = struct{}{}
		}

	case *ast.Attribute:
		if n.Directive {
			if n.Key != "t" {
				return
			}
			container, ok := n.Value.(*ast.ExpressionContainer)
			if !ok {
				return
			}
			lit, ok := container.Expression.(*ast.Literal)
			if !ok {
				return
			}
			if key, ok := literalKey(lit.Value); ok {
				set[key] = struct{}{}
			}
			return
		}

		if n.Key != "path" || n.Element == nil {
			return
		}
		if n.Element.Name != "i18n" && n.Element.Name != "i18n-t" {
			return
		}
		value, ok := n.Value.(*ast.AttributeValue)
		if !ok || value.Value == "" {
			return
		}
		set[value.Value] = struct{}{}
	}
}

// calleeName resolves the call target: the property name of a member
// access, or a bare identifier. Anything else has no resolvable name.
func calleeName(callee ast.Node) string {
	switch c := callee.(type) {
	case *ast.MemberExpression:
		if id, ok := c.Property.(*ast.Identifier); ok {
			return id.Name
		}
	case *ast.Identifier:
		return c.Name
	}
	return ""
}

// literalKey stringifies a literal value, applying the truthiness gate
// every rule shares: empty strings, zero, false and null never become
// keys. A translation path spelled as the number 0 is dropped too;
// the tests document that limitation.
func literalKey(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64:
		if v == 0 {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	}
	return "", false
}
