package collector

import (
	"path/filepath"
	"strings"

	"github.com/keylint-dev/keylint/internal/lister"
)

// targetResolver expands patterns through the lister and filters the
// result by extension, memoized per (patterns, extensions) pair for the
// life of the resolver.
type targetResolver struct {
	lister lister.Lister
	cache  *memo[[]string]
}

func newTargetResolver(l lister.Lister) *targetResolver {
	return &targetResolver{lister: l, cache: newMemo[[]string]()}
}

// resolve returns the concrete file list for the input pair. Entries
// the lister flags ignored are dropped; extensions are matched with the
// leading dot; duplicate expansions flow through unchanged.
func (t *targetResolver) resolve(patterns, extensions []string) []string {
	return t.cache.get(keyOf(patterns, extensions), func() []string {
		allowed := make(map[string]bool, len(extensions))
		for _, ext := range extensions {
			allowed[strings.ToLower(ext)] = true
		}

		var files []string
		for _, entry := range t.lister.List(patterns) {
			if entry.Ignored {
				continue
			}
			if !allowed[strings.ToLower(filepath.Ext(entry.Filename))] {
				continue
			}
			files = append(files, entry.Filename)
		}
		return files
	})
}

func (t *targetResolver) reset() {
	t.cache.reset()
}
