package languages

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/keylint-dev/keylint/internal/ast"
)

// convertElement adapts a markup element and its subtree. Directive
// spellings are normalized here so the extraction rules only ever see
// one attribute shape.
func (v *VueParser) convertElement(node *sitter.Node, src []byte) *ast.Element {
	el := &ast.Element{Name: tagName(node, src)}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "start_tag", "self_closing_tag":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if attrNode := child.NamedChild(j); attrNode.Type() == "attribute" {
					el.Attributes = append(el.Attributes, v.convertAttribute(attrNode, src, el))
				}
			}
		case "element":
			el.Children = append(el.Children, v.convertElement(child, src))
		case "script_element", "style_element":
			// Nested blocks inside a template carry no keys.
		case "text":
			el.Children = append(el.Children, v.convertText(child.Content(src))...)
		}
	}
	return el
}

func (v *VueParser) convertAttribute(node *sitter.Node, src []byte, el *ast.Element) *ast.Attribute {
	attr := &ast.Attribute{Element: el}

	var value string
	hasValue := false
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "attribute_name":
			attr.Key, attr.Directive = normalizeAttributeKey(child.Content(src))
		case "quoted_attribute_value":
			hasValue = true
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if inner := child.NamedChild(j); inner.Type() == "attribute_value" {
					value = inner.Content(src)
				}
			}
		case "attribute_value":
			hasValue = true
			value = child.Content(src)
		}
	}

	if !hasValue {
		return attr
	}
	if attr.Directive {
		container := &ast.ExpressionContainer{}
		if strings.TrimSpace(value) != "" {
			container.Expression = v.js.ParseExpression([]byte(value))
		}
		attr.Value = container
		return attr
	}
	attr.Value = &ast.AttributeValue{Value: value}
	return attr
}

// normalizeAttributeKey collapses the directive spellings to one bare
// name: "v-t.preserve" -> ("t", true), ":path" and "v-bind:path" ->
// ("bind", true), "@click" -> ("on", true), "#default" -> ("slot",
// true). Plain attribute names pass through unchanged.
func normalizeAttributeKey(name string) (string, bool) {
	switch {
	case strings.HasPrefix(name, "v-"):
		rest := name[len("v-"):]
		if i := strings.IndexAny(rest, ":."); i >= 0 {
			rest = rest[:i]
		}
		return rest, true
	case strings.HasPrefix(name, ":"):
		return "bind", true
	case strings.HasPrefix(name, "@"):
		return "on", true
	case strings.HasPrefix(name, "#"):
		return "slot", true
	}
	return name, false
}

// convertText splits character data around {{ ... }} interpolations,
// parsing each one as a script expression.
func (v *VueParser) convertText(text string) []ast.Node {
	var nodes []ast.Node
	for {
		open := strings.Index(text, "{{")
		if open < 0 {
			break
		}
		closeOff := strings.Index(text[open+2:], "}}")
		if closeOff < 0 {
			break
		}

		if lead := text[:open]; strings.TrimSpace(lead) != "" {
			nodes = append(nodes, &ast.Text{Value: lead})
		}
		container := &ast.ExpressionContainer{}
		if expr := text[open+2 : open+2+closeOff]; strings.TrimSpace(expr) != "" {
			container.Expression = v.js.ParseExpression([]byte(expr))
		}
		nodes = append(nodes, container)
		text = text[open+2+closeOff+2:]
	}
	if strings.TrimSpace(text) != "" {
		nodes = append(nodes, &ast.Text{Value: text})
	}
	return nodes
}
