// Package lister expands path and glob patterns into candidate files.
// It flags ignored entries instead of dropping them; filtering is the
// target resolver's job.
package lister

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/keylint-dev/keylint/internal/ignore"
)

// Entry is one candidate file produced by pattern expansion.
type Entry struct {
	Filename string
	Ignored  bool
}

// Lister expands patterns into candidate files.
type Lister interface {
	List(patterns []string) []Entry
}

// FileSystemLister walks the real filesystem under a fixed root.
// Entries that cannot be read are skipped; a missing pattern simply
// contributes nothing.
type FileSystemLister struct {
	root    string
	matcher *ignore.Matcher
}

// New creates a lister rooted at root with the given extra ignore
// rules.
func New(root string, ignoreRules []string) *FileSystemLister {
	return &FileSystemLister{
		root:    root,
		matcher: ignore.NewMatcher(ignoreRules),
	}
}

func (l *FileSystemLister) List(patterns []string) []Entry {
	var entries []Entry
	for _, pattern := range patterns {
		entries = append(entries, l.expand(pattern)...)
	}
	return entries
}

func (l *FileSystemLister) expand(pattern string) []Entry {
	path := pattern
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return l.walkDir(path)
		}
		return []Entry{l.entryFor(path)}
	}

	if !strings.ContainsAny(pattern, "*?") {
		return nil
	}
	return l.expandGlob(pattern)
}

func (l *FileSystemLister) walkDir(dir string) []Entry {
	var entries []Entry
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			// Descending into an ignored directory only yields
			// entries the resolver would drop anyway.
			if l.ignored(path, true) {
				return filepath.SkipDir
			}
			return nil
		}
		entries = append(entries, l.entryFor(path))
		return nil
	})
	return entries
}

// expandGlob matches a relative glob pattern against every file under
// the lister root.
func (l *FileSystemLister) expandGlob(pattern string) []Entry {
	var entries []Entry
	_ = filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != l.root && l.ignored(path, true) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(l.root, path)
		if relErr != nil {
			return nil
		}
		if ignore.MatchGlob(pattern, rel) {
			entries = append(entries, l.entryFor(path))
		}
		return nil
	})
	return entries
}

func (l *FileSystemLister) entryFor(path string) Entry {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return Entry{Filename: abs, Ignored: l.ignored(path, false)}
}

func (l *FileSystemLister) ignored(path string, isDir bool) bool {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		rel = path
	}
	return l.matcher.Ignored(rel, isDir)
}
