package languages

import (
	"testing"

	"github.com/keylint-dev/keylint/internal/ast"
	"github.com/keylint-dev/keylint/internal/parser"
)

func firstCall(t *testing.T, prog *ast.Program) *ast.CallExpression {
	t.Helper()
	var call *ast.CallExpression
	ast.Walk(prog, func(n ast.Node) {
		if c, ok := n.(*ast.CallExpression); ok && call == nil {
			call = c
		}
	}, nil)
	if call == nil {
		t.Fatalf("expected a call expression in the program")
	}
	return call
}

func TestJavaScriptMemberCallConversion(t *testing.T) {
	js := NewJavaScriptParser()
	prog, err := js.Parse("main.js", []byte(`this.$t('hello.world', 1)`), parser.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	call := firstCall(t, prog)
	member, ok := call.Callee.(*ast.MemberExpression)
	if !ok {
		t.Fatalf("expected member expression callee, got %T", call.Callee)
	}
	prop, ok := member.Property.(*ast.Identifier)
	if !ok || prop.Name != "$t" {
		t.Fatalf("expected property $t, got %#v", member.Property)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Arguments))
	}
	lit, ok := call.Arguments[0].(*ast.Literal)
	if !ok || lit.Value != "hello.world" {
		t.Fatalf("expected literal hello.world, got %#v", call.Arguments[0])
	}
}

func TestJavaScriptBareCallConversion(t *testing.T) {
	js := NewJavaScriptParser()
	prog, err := js.Parse("main.js", []byte(`t("msg")`), parser.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	call := firstCall(t, prog)
	id, ok := call.Callee.(*ast.Identifier)
	if !ok || id.Name != "t" {
		t.Fatalf("expected identifier callee t, got %#v", call.Callee)
	}
}

func TestJavaScriptTaggedTemplateHasNoArguments(t *testing.T) {
	js := NewJavaScriptParser()
	prog, err := js.Parse("main.js", []byte("t`msg`"), parser.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	call := firstCall(t, prog)
	if len(call.Arguments) != 0 {
		t.Fatalf("tagged template must not produce call arguments, got %d", len(call.Arguments))
	}
}

func TestJavaScriptTemplateStringIsNotALiteral(t *testing.T) {
	js := NewJavaScriptParser()
	prog, err := js.Parse("main.js", []byte("t(`msg`)"), parser.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	call := firstCall(t, prog)
	if len(call.Arguments) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(call.Arguments))
	}
	if _, ok := call.Arguments[0].(*ast.Literal); ok {
		t.Fatalf("template strings must convert to Raw nodes, not literals")
	}
}

func TestParseExpressionReducesToSingleNode(t *testing.T) {
	js := NewJavaScriptParser()

	node := js.ParseExpression([]byte(`'greet.hi'`))
	lit, ok := node.(*ast.Literal)
	if !ok || lit.Value != "greet.hi" {
		t.Fatalf("expected string literal, got %#v", node)
	}

	node = js.ParseExpression([]byte(`msgKey`))
	if _, ok := node.(*ast.Identifier); !ok {
		t.Fatalf("expected identifier, got %#v", node)
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	cases := []struct {
		seq  string
		want string
	}{
		{`\n`, "\n"},
		{`\t`, "\t"},
		{`\'`, "'"},
		{`\\`, `\`},
		{`é`, "é"},
		{`\u{1F600}`, "😀"},
		{`\x41`, "A"},
	}
	for _, tc := range cases {
		if got := decodeEscape(tc.seq); got != tc.want {
			t.Fatalf("decodeEscape(%q): expected %q, got %q", tc.seq, tc.want, got)
		}
	}
}

func TestDecodeNumberLiteral(t *testing.T) {
	cases := []struct {
		raw  string
		want any
	}{
		{"0", float64(0)},
		{"42", float64(42)},
		{"1.5", float64(1.5)},
		{"1_000", float64(1000)},
		{"0x10", float64(16)},
		{"0b101", float64(5)},
		{"0o17", float64(15)},
	}
	for _, tc := range cases {
		if got := decodeNumberLiteral(tc.raw); got != tc.want {
			t.Fatalf("decodeNumberLiteral(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}
