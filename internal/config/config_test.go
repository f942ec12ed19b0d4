package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `parser: vue
parserOptions:
  ecmaVersion: 2022
ignore:
  - "legacy/**"
overrides:
  - files: "scripts/**/*.js"
    parser: javascript
  - files: "scripts/special.js"
    parser: vue
`

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	r := NewResolver(cfg, dir)

	fc := r.ConfigFor(filepath.Join(dir, "src", "app.vue"))
	if fc.Parser != "vue" {
		t.Fatalf("expected top-level parser vue, got %q", fc.Parser)
	}
	if fc.ParserOptions["ecmaVersion"] != 2022 {
		t.Fatalf("expected parserOptions to carry ecmaVersion, got %v", fc.ParserOptions)
	}

	fc = r.ConfigFor(filepath.Join(dir, "scripts", "build.js"))
	if fc.Parser != "javascript" {
		t.Fatalf("expected override parser javascript, got %q", fc.Parser)
	}
}

func TestOverridesLastMatchWins(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	r := NewResolver(cfg, dir)

	fc := r.ConfigFor(filepath.Join(dir, "scripts", "special.js"))
	if fc.Parser != "vue" {
		t.Fatalf("expected later override to win, got %q", fc.Parser)
	}
}

func TestDiscoverDegradesToZeroConfig(t *testing.T) {
	r := Discover(t.TempDir())
	fc := r.ConfigFor("whatever.vue")
	if fc.Parser != "" {
		t.Fatalf("expected empty parser for missing config, got %q", fc.Parser)
	}
	if len(r.IgnoreRules()) != 0 {
		t.Fatalf("expected no ignore rules, got %v", r.IgnoreRules())
	}
}

func TestDiscoverMalformedConfigDegrades(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{ not yaml"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	r := Discover(dir)
	if fc := r.ConfigFor("x.vue"); fc.Parser != "" {
		t.Fatalf("expected zero config for malformed file, got %q", fc.Parser)
	}
}

func TestIgnoreRulesExposed(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(writeConfig(t, dir))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	r := NewResolver(cfg, dir)
	rules := r.IgnoreRules()
	if len(rules) != 1 || rules[0] != "legacy/**" {
		t.Fatalf("expected [legacy/**], got %v", rules)
	}
}
