package languages

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// decodeStringLiteral returns the cooked value of a string node,
// concatenating its fragments with escape sequences interpreted.
func decodeStringLiteral(node *sitter.Node, src []byte) string {
	var b strings.Builder
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "string_fragment":
			b.WriteString(child.Content(src))
		case "escape_sequence":
			b.WriteString(decodeEscape(child.Content(src)))
		}
	}
	return b.String()
}

func decodeEscape(seq string) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return seq
	}
	switch seq[1] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		return "\x00"
	case 'x':
		if code, err := strconv.ParseUint(seq[2:], 16, 32); err == nil {
			return string(rune(code))
		}
	case 'u':
		hex := seq[2:]
		hex = strings.TrimPrefix(hex, "{")
		hex = strings.TrimSuffix(hex, "}")
		if code, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return string(rune(code))
		}
	}
	return string(seq[1])
}

// decodeNumberLiteral parses a numeric literal, handling the prefixed
// bases and digit separators the grammar accepts. Unparsable input
// falls back to the raw text so the value stays truthy.
func decodeNumberLiteral(raw string) any {
	text := strings.ReplaceAll(raw, "_", "")
	text = strings.TrimSuffix(text, "n") // bigint suffix

	if len(text) > 2 && text[0] == '0' {
		base := 0
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if v, err := strconv.ParseUint(text[2:], base, 64); err == nil {
				return float64(v)
			}
		}
	}

	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v
	}
	return raw
}
