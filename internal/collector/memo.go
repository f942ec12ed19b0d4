package collector

import (
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// memo caches computed values per derived argument key. An entry, once
// computed, is returned for every later call with an equal key without
// re-running the computation. Entries live until reset.
type memo[V any] struct {
	mu      sync.Mutex
	entries map[string]V
}

func newMemo[V any]() *memo[V] {
	return &memo[V]{entries: make(map[string]V)}
}

// get returns the cached value for key, running compute only on the
// first call for that key. The lock is held across compute so a key is
// never computed twice.
func (m *memo[V]) get(key string, compute func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.entries[key]; ok {
		return v
	}
	v := compute()
	m.entries[key] = v
	return v
}

func (m *memo[V]) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]V)
}

// keyOf derives a stable cache key from one or more argument lists.
// List and element boundaries are delimited so ["ab"] and ["a","b"]
// never collide.
func keyOf(argLists ...[]string) string {
	h := xxhash.New()
	for _, args := range argLists {
		for _, arg := range args {
			_, _ = h.WriteString(arg)
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte{1})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
