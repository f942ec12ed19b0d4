// Package collector aggregates the translation keys used across a set
// of files. Two cache levels make repeated calls cheap: target
// resolution is memoized per (patterns, extensions) pair, and the
// per-file parse+extract work is memoized per resolved file list, so a
// file is never parsed more than once per collector for a given input
// combination.
package collector

import (
	"os"

	"github.com/keylint-dev/keylint/internal/config"
	"github.com/keylint-dev/keylint/internal/extract"
	"github.com/keylint-dev/keylint/internal/lister"
	"github.com/keylint-dev/keylint/internal/parser"
)

// Collector is the process-facing entry point. It owns its caches
// outright; callers that share one Collector share the cached work.
// Safe for concurrent use.
type Collector struct {
	targets   *targetResolver
	resources *memo[[]*fileResource]
	registry  *parser.Registry
	config    *config.Resolver
}

// New creates a Collector over the given collaborators.
func New(l lister.Lister, cfg *config.Resolver, reg *parser.Registry) *Collector {
	return &Collector{
		targets:   newTargetResolver(l),
		resources: newMemo[[]*fileResource](),
		registry:  reg,
		config:    cfg,
	}
}

// CollectKeysFromFiles resolves the target file list for the pattern
// and extension inputs, then unions every file's extracted key set.
// The returned order is not meaningful.
func (c *Collector) CollectKeysFromFiles(files, extensions []string) []string {
	targets := c.targets.resolve(files, extensions)

	resources := c.resources.get(keyOf(targets), func() []*fileResource {
		out := make([]*fileResource, 0, len(targets))
		for _, path := range targets {
			out = append(out, newFileResource(path, func() []string {
				return c.extractFile(path)
			}))
		}
		return out
	})

	set := make(map[string]struct{})
	for _, res := range resources {
		for _, key := range res.Keys() {
			set[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	return keys
}

// Reset drops both cache levels. Needed when files change on disk
// between runs, e.g. a test harness rewriting fixtures.
func (c *Collector) Reset() {
	c.targets.reset()
	c.resources.reset()
}

// extractFile reads, parses and extracts one file. Any failure makes
// the file contribute an empty key set: one unparsable file must not
// hide the keys found in every other file.
func (c *Collector) extractFile(path string) []string {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	fc := c.config.ConfigFor(path)
	opts := parser.Options{
		FilePath: path,
		Comments: true,
		Tokens:   true,
		Ranges:   true,
		Custom:   fc.ParserOptions,
	}

	prog, err := c.registry.Resolve(fc.Parser).Parse(path, src, opts)
	if err != nil || prog == nil {
		return nil
	}
	return extract.Keys(prog)
}
