package parser

import (
	"strings"

	"github.com/keylint-dev/keylint/internal/ast"
)

// Parser turns source text into the shared AST taxonomy.
type Parser interface {
	// Name returns the strategy name used to select this parser
	// (e.g., "vue", "javascript")
	Name() string

	// Extensions returns file extensions this parser handles
	Extensions() []string

	// Parse builds the AST for one file
	Parse(filename string, src []byte, opts Options) (*ast.Program, error)
}

// Options carries per-parse settings. The extraction pipeline forces
// every capture flag on and sets the source path before parsing.
type Options struct {
	FilePath string
	Comments bool
	Tokens   bool
	Ranges   bool

	// Custom holds parser-specific settings from the resolved file
	// config; implementations may ignore it.
	Custom map[string]any
}

// Registry holds named parser strategies plus a fixed default. Lookup
// never fails: an unknown or empty name reports !ok, and Resolve
// degrades to the default strategy instead of surfacing an error.
type Registry struct {
	parsers   map[string]Parser // strategy name -> parser
	extToName map[string]string // extension -> strategy name
	fallback  Parser
}

// NewRegistry creates a registry whose Resolve falls back to def.
func NewRegistry(def Parser) *Registry {
	r := &Registry{
		parsers:   make(map[string]Parser),
		extToName: make(map[string]string),
		fallback:  def,
	}
	r.Register(def)
	return r
}

// Register adds a parser strategy to the registry.
func (r *Registry) Register(p Parser) {
	r.parsers[p.Name()] = p
	for _, ext := range p.Extensions() {
		r.extToName[strings.ToLower(ext)] = p.Name()
	}
}

// Lookup finds a strategy by name.
func (r *Registry) Lookup(name string) (Parser, bool) {
	p, ok := r.parsers[name]
	return p, ok
}

// Resolve returns the named strategy, or the default when name is empty
// or unregistered. Resolution is total.
func (r *Registry) Resolve(name string) Parser {
	if name == "" {
		return r.fallback
	}
	if p, ok := r.parsers[name]; ok {
		return p
	}
	return r.fallback
}

// SupportedExtensions returns all extensions claimed by registered
// strategies, including the leading dot.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.extToName))
	for ext := range r.extToName {
		exts = append(exts, ext)
	}
	return exts
}
