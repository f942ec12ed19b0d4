package languages

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/keylint-dev/keylint/internal/ast"
	"github.com/keylint-dev/keylint/internal/parser"
)

// JavaScriptParser parses plain script files with the tree-sitter
// javascript grammar and adapts the CST into the shared AST taxonomy.
// Safe for concurrent use.
type JavaScriptParser struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewJavaScriptParser creates a new JavaScript parser.
func NewJavaScriptParser() *JavaScriptParser {
	p := sitter.NewParser()
	p.SetLanguage(javascript.GetLanguage())
	return &JavaScriptParser{parser: p}
}

func (j *JavaScriptParser) Name() string {
	return "javascript"
}

func (j *JavaScriptParser) Extensions() []string {
	return []string{".js", ".jsx", ".mjs", ".cjs"}
}

// parseTree serializes access to the underlying parser: a tree-sitter
// parser instance may only run on one goroutine at a time. The returned
// tree is immutable and safe to read without the lock.
func (j *JavaScriptParser) parseTree(src []byte) (*sitter.Tree, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.parser.ParseCtx(context.Background(), nil, src)
}

func (j *JavaScriptParser) Parse(filename string, src []byte, opts parser.Options) (*ast.Program, error) {
	tree, err := j.parseTree(src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	prog := &ast.Program{}
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		if node := convertScriptNode(root.NamedChild(i), src); node != nil {
			prog.Body = append(prog.Body, node)
		}
	}
	return prog, nil
}

// ParseExpression parses src as a single expression and returns the
// converted node, or nil when src does not reduce to one expression.
// Used for directive values and template interpolations.
func (j *JavaScriptParser) ParseExpression(src []byte) ast.Node {
	tree, err := j.parseTree(src)
	if err != nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.NamedChildCount() == 0 {
		return nil
	}
	stmt := root.NamedChild(0)
	if stmt.Type() == "expression_statement" && stmt.NamedChildCount() > 0 {
		return convertScriptNode(stmt.NamedChild(0), src)
	}
	return convertScriptNode(stmt, src)
}

// convertScriptNode maps a tree-sitter javascript node onto the taxonomy
// the extraction rules dispatch on. Constructs the rules never inspect
// become Raw nodes so the walk still reaches every descendant.
func convertScriptNode(node *sitter.Node, src []byte) ast.Node {
	if node == nil {
		return nil
	}

	switch node.Type() {
	case "call_expression":
		call := &ast.CallExpression{
			Callee: convertScriptNode(node.ChildByFieldName("function"), src),
		}
		// Tagged templates put a template_string in the arguments
		// field; those are not argument lists.
		if args := node.ChildByFieldName("arguments"); args != nil && args.Type() == "arguments" {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				call.Arguments = append(call.Arguments, convertScriptNode(args.NamedChild(i), src))
			}
		}
		return call

	case "member_expression":
		return &ast.MemberExpression{
			Object:   convertScriptNode(node.ChildByFieldName("object"), src),
			Property: convertScriptNode(node.ChildByFieldName("property"), src),
		}

	case "identifier", "property_identifier", "shorthand_property_identifier":
		return &ast.Identifier{Name: node.Content(src)}

	case "string":
		return &ast.Literal{Value: decodeStringLiteral(node, src), Raw: node.Content(src)}

	case "number":
		raw := node.Content(src)
		return &ast.Literal{Value: decodeNumberLiteral(raw), Raw: raw}

	case "true":
		return &ast.Literal{Value: true, Raw: "true"}

	case "false":
		return &ast.Literal{Value: false, Raw: "false"}

	case "null":
		return &ast.Literal{Value: nil, Raw: "null"}
	}

	raw := &ast.Raw{Type: node.Type()}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := convertScriptNode(node.NamedChild(i), src); child != nil {
			raw.Children = append(raw.Children, child)
		}
	}
	return raw
}
