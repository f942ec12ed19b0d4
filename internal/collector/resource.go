package collector

import "sync"

// fileResource lazily computes and retains the keys found in one file.
// The computation runs at most once per instance; every later read
// returns the retained set.
type fileResource struct {
	path    string
	once    sync.Once
	keys    []string
	compute func() []string
}

func newFileResource(path string, compute func() []string) *fileResource {
	return &fileResource{path: path, compute: compute}
}

// Keys returns the file's extracted key set, computing it on first use.
func (r *fileResource) Keys() []string {
	r.once.Do(func() {
		r.keys = r.compute()
	})
	return r.keys
}
