package collector

import (
	"os"
	"sync"

	"github.com/keylint-dev/keylint/internal/config"
	"github.com/keylint-dev/keylint/internal/languages"
	"github.com/keylint-dev/keylint/internal/lister"
)

var (
	defaultOnce sync.Once
	defaultColl *Collector
)

// Default returns the shared process-wide Collector, built lazily over
// the working directory: filesystem lister, discovered config, built-in
// parser registry. Independent consumers in one process (e.g. several
// lint rules in one run) share its caches and never re-parse a file for
// a given input combination.
//
// The root and config are pinned at first call, so Default is for
// long-lived embedders working out of one directory. Callers that must
// honor a per-invocation working directory or an explicit config path,
// like the CLI, construct their own Collector with New.
func Default() *Collector {
	defaultOnce.Do(func() {
		root, err := os.Getwd()
		if err != nil {
			root = "."
		}
		cfg := config.Discover(root)
		defaultColl = New(lister.New(root, cfg.IgnoreRules()), cfg, languages.NewDefaultRegistry())
	})
	return defaultColl
}
