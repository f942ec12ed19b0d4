// Package ignore applies gitignore-like exclusion rules to candidate
// source files before they reach the parsing pipeline.
package ignore

import (
	"path/filepath"
	"regexp"
	"strings"
)

type rule struct {
	re       *regexp.Regexp
	pattern  string
	negated  bool
	dirOnly  bool
	anchored bool
	slashed  bool
}

// Matcher applies ignore rules with "last rule wins" behavior.
type Matcher struct {
	rules []rule
}

// defaultRules cover build output and dependency trees that never carry
// translation keys worth scanning. User negation rules can re-include
// them.
var defaultRules = []string{
	".git/",
	"node_modules/",
	"bower_components/",
	"dist/",
	"build/",
	"coverage/",
	"vendor/",
}

// NewMatcher builds a matcher from .keylintignore-style lines, with the
// default excludes prepended.
func NewMatcher(userRules []string) *Matcher {
	all := make([]string, 0, len(defaultRules)+len(userRules))
	all = append(all, defaultRules...)
	all = append(all, userRules...)

	rules := make([]rule, 0, len(all))
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			rules = append(rules, parsed)
		}
	}
	return &Matcher{rules: rules}
}

// Ignored reports whether relPath is excluded by the rule set.
func (m *Matcher) Ignored(relPath string, isDir bool) bool {
	relPath = normalizePath(relPath)
	ignored := false
	for _, r := range m.rules {
		if r.matches(relPath, isDir) {
			ignored = !r.negated
		}
	}
	return ignored
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	parsed := rule{}
	if strings.HasPrefix(line, "!") {
		parsed.negated = true
		line = strings.TrimPrefix(line, "!")
	}
	if strings.HasPrefix(line, "/") {
		parsed.anchored = true
		line = strings.TrimPrefix(line, "/")
	}
	if strings.HasSuffix(line, "/") {
		parsed.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	line = normalizePath(line)
	if line == "" {
		return rule{}, false
	}
	parsed.pattern = line
	parsed.slashed = strings.Contains(line, "/")
	parsed.re = compileGlob(line)
	return parsed, true
}

func (r rule) matches(relPath string, isDir bool) bool {
	if r.dirOnly {
		if r.matchesDirectory(relPath) {
			return true
		}
		return isDir && r.re.MatchString(filepath.Base(relPath))
	}

	if r.anchored {
		return r.re.MatchString(relPath)
	}

	if r.slashed {
		if r.re.MatchString(relPath) {
			return true
		}
		parts := strings.Split(relPath, "/")
		for i := 1; i < len(parts); i++ {
			if r.re.MatchString(strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}

	if r.re.MatchString(filepath.Base(relPath)) {
		return true
	}
	for _, segment := range strings.Split(relPath, "/") {
		if r.re.MatchString(segment) {
			return true
		}
	}
	return false
}

func (r rule) matchesDirectory(relPath string) bool {
	if relPath == r.pattern || strings.HasPrefix(relPath, r.pattern+"/") {
		return true
	}
	if r.anchored {
		return false
	}
	parts := strings.Split(relPath, "/")
	for i := range parts {
		if strings.Join(parts[:i+1], "/") == r.pattern {
			return true
		}
	}
	return false
}

// MatchGlob reports whether the slash-separated path matches a glob
// pattern. "*" and "?" stop at path separators; "**" crosses them.
func MatchGlob(pattern, path string) bool {
	return compileGlob(normalizePath(pattern)).MatchString(normalizePath(path))
}

func compileGlob(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]

		if ch == '*' {
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				// "**/" also matches zero directories.
				if i+2 < len(pattern) && pattern[i+2] == '/' {
					b.WriteString("(?:.*/)?")
					i += 2
					continue
				}
				b.WriteString(".*")
				i++
				continue
			}
			b.WriteString("[^/]*")
			continue
		}
		if ch == '?' {
			b.WriteString("[^/]")
			continue
		}
		if strings.ContainsRune(`.+()|[]{}^$\\`, rune(ch)) {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimPrefix(path, "/")
	return path
}
