// Package parsing turns a hand-edited achievement document into raw achievement entries.
package parsing

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
)

// DocumentMeta is the optional YAML front matter of an achievement document
type DocumentMeta struct {
	Title   string `yaml:"title" json:"title,omitempty"`
	Owner   string `yaml:"owner" json:"owner,omitempty"`
	Version string `yaml:"version" json:"version,omitempty"`
	Updated string `yaml:"updated" json:"updated,omitempty"`
}

// IsZero reports whether no front matter field was set
func (m DocumentMeta) IsZero() bool {
	return m == DocumentMeta{}
}

// splitFrontMatter separates front matter from the markdown body.
// It returns the metadata, the body and the number of lines consumed by the front matter.
// Malformed front matter is left in place and handled as ordinary preamble.
func splitFrontMatter(text string) (DocumentMeta, string, int) {
	var meta DocumentMeta
	if !looksLikeFrontMatter(text) {
		return meta, text, 0
	}

	body, err := frontmatter.Parse(bytes.NewReader([]byte(text)), &meta)
	if err != nil {
		return DocumentMeta{}, text, 0
	}

	rest := string(body)
	if !strings.HasSuffix(text, rest) {
		return meta, rest, 0
	}
	consumed := strings.Count(text[:len(text)-len(rest)], "\n")
	return meta, rest, consumed
}

// looksLikeFrontMatter requires an opening delimiter on the first line, a matching
// closing delimiter, and no markdown headings or bold lines in between. A document
// that opens with a horizontal rule is not mistaken for front matter.
func looksLikeFrontMatter(text string) bool {
	lines := strings.Split(text, "\n")
	delim := strings.TrimSpace(lines[0])
	if delim != "---" && delim != "+++" {
		return false
	}
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == delim {
			return true
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "**") {
			return false
		}
	}
	return false
}
