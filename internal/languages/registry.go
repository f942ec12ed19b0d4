package languages

import "github.com/keylint-dev/keylint/internal/parser"

// NewDefaultRegistry creates a registry with the built-in parser
// strategies. The single-file-component parser is the default: it
// handles both component and plain script syntax.
func NewDefaultRegistry() *parser.Registry {
	r := parser.NewRegistry(NewVueParser())
	r.Register(NewJavaScriptParser())
	return r
}
