package languages

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"

	"github.com/keylint-dev/keylint/internal/ast"
	"github.com/keylint-dev/keylint/internal/parser"
)

// VueParser is the default strategy. It parses single-file components
// by splitting the document with the tree-sitter html grammar: script
// blocks become the program body, the template block becomes the
// separately-walked template sub-tree. Plain script input is delegated
// to the JavaScript parser, so the default handles both syntaxes.
// Safe for concurrent use.
type VueParser struct {
	mu   sync.Mutex
	html *sitter.Parser
	js   *JavaScriptParser
}

// NewVueParser creates a new single-file-component parser.
func NewVueParser() *VueParser {
	p := sitter.NewParser()
	p.SetLanguage(html.GetLanguage())
	return &VueParser{html: p, js: NewJavaScriptParser()}
}

func (v *VueParser) Name() string {
	return "vue"
}

func (v *VueParser) Extensions() []string {
	return []string{".vue"}
}

func (v *VueParser) Parse(filename string, src []byte, opts parser.Options) (*ast.Program, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".vue") {
		return v.js.Parse(filename, src, opts)
	}

	tree, err := v.parseTree(src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	prog := &ast.Program{}
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		block := root.NamedChild(i)
		switch block.Type() {
		case "script_element":
			sub, err := v.js.Parse(filename, []byte(rawText(block, src)), opts)
			if err != nil {
				return nil, err
			}
			prog.Body = append(prog.Body, sub.Body...)
		case "element":
			if tagName(block, src) == "template" && prog.Template == nil {
				prog.Template = v.convertElement(block, src)
			}
		}
	}
	return prog, nil
}

// parseTree serializes access to the html parser: a tree-sitter parser
// instance may only run on one goroutine at a time.
func (v *VueParser) parseTree(src []byte) (*sitter.Tree, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.html.ParseCtx(context.Background(), nil, src)
}

// rawText returns the unparsed content of a script or style block.
func rawText(node *sitter.Node, src []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "raw_text" {
			return child.Content(src)
		}
	}
	return ""
}

// tagName reads the element name off the start or self-closing tag.
func tagName(node *sitter.Node, src []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "start_tag" && child.Type() != "self_closing_tag" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			if name := child.NamedChild(j); name.Type() == "tag_name" {
				return name.Content(src)
			}
		}
	}
	return ""
}
