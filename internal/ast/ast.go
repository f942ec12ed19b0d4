package ast

// Kind identifies the variant of an AST node.
type Kind int

const (
	KindProgram Kind = iota
	KindCallExpression
	KindMemberExpression
	KindIdentifier
	KindLiteral
	KindElement
	KindAttribute
	KindExpressionContainer
	KindAttributeValue
	KindText
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindProgram:
		return "Program"
	case KindCallExpression:
		return "CallExpression"
	case KindMemberExpression:
		return "MemberExpression"
	case KindIdentifier:
		return "Identifier"
	case KindLiteral:
		return "Literal"
	case KindElement:
		return "Element"
	case KindAttribute:
		return "Attribute"
	case KindExpressionContainer:
		return "ExpressionContainer"
	case KindAttributeValue:
		return "AttributeValue"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	default:
		return "unknown"
	}
}

// Node is implemented by every AST variant.
type Node interface {
	Kind() Kind
}

// Program is the root of a parsed file. Body holds the script
// statements. Template, when non-nil, holds the markup sub-tree of a
// single-file component and is traversed separately from Body.
type Program struct {
	Body     []Node
	Template *Element
}

// CallExpression is a function or method invocation.
type CallExpression struct {
	Callee    Node
	Arguments []Node
}

// MemberExpression is a property access such as this.$t.
type MemberExpression struct {
	Object   Node
	Property Node
}

// Identifier is a plain name reference.
type Identifier struct {
	Name string
}

// Literal is a fixed scalar value: string, number (float64), bool or
// nil. Template strings are not literals.
type Literal struct {
	Value any
	Raw   string
}

// Element is a markup element inside a component template.
type Element struct {
	Name       string
	Attributes []*Attribute
	Children   []Node
}

// Attribute is a markup attribute. Key carries the normalized name: for
// directives the bare directive name with the v- prefix, shorthand
// sigil, argument and modifiers stripped (v-t.preserve -> "t",
// :path -> "bind"). Element points back at the enclosing element.
type Attribute struct {
	Directive bool
	Key       string
	Value     Node
	Element   *Element
}

// ExpressionContainer wraps a script expression embedded in markup,
// either a {{ ... }} interpolation or a directive value. Expression is
// nil when the embedded source did not parse to a single expression.
type ExpressionContainer struct {
	Expression Node
}

// AttributeValue is the literal value of a plain (non-directive)
// attribute.
type AttributeValue struct {
	Value string
}

// Text is plain character data inside a template.
type Text struct {
	Value string
}

// Raw is the fallback variant for every script construct the extraction
// rules never inspect directly. Type carries the grammar's node type so
// traversal stays total without modeling the whole language.
type Raw struct {
	Type     string
	Children []Node
}

func (*Program) Kind() Kind             { return KindProgram }
func (*CallExpression) Kind() Kind      { return KindCallExpression }
func (*MemberExpression) Kind() Kind    { return KindMemberExpression }
func (*Identifier) Kind() Kind          { return KindIdentifier }
func (*Literal) Kind() Kind             { return KindLiteral }
func (*Element) Kind() Kind             { return KindElement }
func (*Attribute) Kind() Kind           { return KindAttribute }
func (*ExpressionContainer) Kind() Kind { return KindExpressionContainer }
func (*AttributeValue) Kind() Kind      { return KindAttributeValue }
func (*Text) Kind() Kind                { return KindText }
func (*Raw) Kind() Kind                 { return KindRaw }
