// Package config resolves per-file parser settings from an optional
// .keylintrc.yaml file. Resolution is best-effort: a missing or
// malformed config degrades to the zero value, which selects the
// default parser strategy for every file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/keylint-dev/keylint/internal/ignore"
)

// FileName is the config file looked up in the working directory.
const FileName = ".keylintrc.yaml"

// Override selects a parser for files matching a glob pattern.
type Override struct {
	Files  string `yaml:"files"`
	Parser string `yaml:"parser"`
}

// Config is the on-disk configuration shape.
type Config struct {
	Parser        string         `yaml:"parser"`
	ParserOptions map[string]any `yaml:"parserOptions"`
	Ignore        []string       `yaml:"ignore"`
	Overrides     []Override     `yaml:"overrides"`
}

// FileConfig is the resolved configuration for one file.
type FileConfig struct {
	Parser        string
	ParserOptions map[string]any
}

// Resolver answers per-file config questions against one loaded Config.
type Resolver struct {
	cfg  Config
	root string
}

// NewResolver wraps an already-loaded config. root anchors the relative
// paths override globs are matched against.
func NewResolver(cfg Config, root string) *Resolver {
	return &Resolver{cfg: cfg, root: root}
}

// Load reads and parses a config file.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Discover loads the config file from root if one exists. Any failure
// yields a resolver over the zero config.
func Discover(root string) *Resolver {
	cfg, err := Load(filepath.Join(root, FileName))
	if err != nil {
		return NewResolver(Config{}, root)
	}
	return NewResolver(cfg, root)
}

// ConfigFor resolves the parser name and options for one file.
// Overrides apply in order; the last matching entry wins.
func (r *Resolver) ConfigFor(path string) FileConfig {
	out := FileConfig{
		Parser:        r.cfg.Parser,
		ParserOptions: r.cfg.ParserOptions,
	}

	rel := path
	if r.root != "" {
		if v, err := filepath.Rel(r.root, path); err == nil {
			rel = v
		}
	}
	for _, o := range r.cfg.Overrides {
		if o.Files == "" {
			continue
		}
		if ignore.MatchGlob(o.Files, rel) || ignore.MatchGlob(o.Files, filepath.Base(rel)) {
			if o.Parser != "" {
				out.Parser = o.Parser
			}
		}
	}
	return out
}

// IgnoreRules returns the extra ignore rules declared by the config.
func (r *Resolver) IgnoreRules() []string {
	return r.cfg.Ignore
}
