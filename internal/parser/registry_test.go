package parser

import (
	"sort"
	"testing"

	"github.com/keylint-dev/keylint/internal/ast"
)

type stubParser struct {
	name string
	exts []string
}

func (s stubParser) Name() string {
	return s.name
}

func (s stubParser) Extensions() []string {
	return s.exts
}

func (s stubParser) Parse(filename string, src []byte, opts Options) (*ast.Program, error) {
	return &ast.Program{}, nil
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(stubParser{name: "default", exts: []string{".def"}})
	r.Register(stubParser{name: "custom", exts: []string{".cst"}})

	p, ok := r.Lookup("custom")
	if !ok || p.Name() != "custom" {
		t.Fatalf("expected to find custom strategy, got ok=%v", ok)
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Fatalf("unknown strategy must report !ok, never fail")
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	r := NewRegistry(stubParser{name: "default", exts: []string{".def"}})
	r.Register(stubParser{name: "custom", exts: []string{".cst"}})

	if got := r.Resolve("custom").Name(); got != "custom" {
		t.Fatalf("expected custom, got %s", got)
	}
	if got := r.Resolve("").Name(); got != "default" {
		t.Fatalf("empty name must resolve to the default, got %s", got)
	}
	if got := r.Resolve("no-such-parser").Name(); got != "default" {
		t.Fatalf("unknown name must resolve to the default, got %s", got)
	}
}

func TestSupportedExtensions(t *testing.T) {
	r := NewRegistry(stubParser{name: "default", exts: []string{".def", ".DEF2"}})
	r.Register(stubParser{name: "custom", exts: []string{".cst"}})

	exts := r.SupportedExtensions()
	sort.Strings(exts)

	want := []string{".cst", ".def", ".def2"}
	if len(exts) != len(want) {
		t.Fatalf("expected %v, got %v", want, exts)
	}
	for i := range want {
		if exts[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, exts)
		}
	}
}
