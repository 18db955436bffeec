// Package inference derives keywords, skills, role types, company types and a strength
// level for raw achievement entries. All inference is rule based and deterministic.
package inference

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// text wraps a piece of free text for repeated term lookups
type text struct {
	raw   string
	lower string
}

func newText(s string) text {
	return text{raw: s, lower: strings.ToLower(s)}
}

// has reports whether term occurs in the text as a whole token.
// Acronyms and configured case-sensitive terms must match exactly; everything else ignores case.
func (t text) has(term string, caseSensitive bool) bool {
	if term == "" {
		return false
	}
	haystack, needle := t.lower, strings.ToLower(term)
	if caseSensitive || isAcronym(term) {
		haystack, needle = t.raw, term
	}
	return indexToken(haystack, needle) >= 0
}

// hasAny reports whether any of the terms occurs in the text
func (t text) hasAny(terms []string, caseSensitive map[string]bool) bool {
	for _, term := range terms {
		if t.has(term, caseSensitive[term]) {
			return true
		}
	}
	return false
}

// indexToken finds needle in haystack such that it is not glued to surrounding words.
// A needle that begins with a letter may not follow a letter; one that begins with a digit
// may not follow a letter or digit. A needle ending in a letter or digit may not be
// followed by one. Edges that are punctuation or symbols are not checked.
func indexToken(haystack, needle string) int {
	first, _ := utf8.DecodeRuneInString(needle)
	last, _ := utf8.DecodeLastRuneInString(needle)

	offset := 0
	for {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return -1
		}
		start := offset + idx
		end := start + len(needle)

		leftOK := true
		if start > 0 {
			prev, _ := utf8.DecodeLastRuneInString(haystack[:start])
			switch {
			case unicode.IsLetter(first):
				leftOK = !unicode.IsLetter(prev)
			case unicode.IsDigit(first):
				leftOK = !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
			}
		}

		rightOK := true
		if end < len(haystack) && (unicode.IsLetter(last) || unicode.IsDigit(last)) {
			next, _ := utf8.DecodeRuneInString(haystack[end:])
			rightOK = !unicode.IsLetter(next) && !unicode.IsDigit(next)
		}

		if leftOK && rightOK {
			return start
		}
		offset = start + 1
	}
}

// isAcronym reports terms made of uppercase letters (digits and / allowed), like AWS, S3, CI/CD
func isAcronym(term string) bool {
	letters := 0
	for _, r := range term {
		switch {
		case unicode.IsUpper(r):
			letters++
		case unicode.IsDigit(r), r == '/', r == '+':
		default:
			return false
		}
	}
	return letters >= 1 && len(term) >= 2
}

// stringSet accumulates values, deduplicating case-insensitively and keeping first-seen order
type stringSet struct {
	seen   map[string]bool
	values []string
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[string]bool), values: make([]string, 0)}
}

func (s *stringSet) add(values ...string) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.values = append(s.values, v)
	}
}

func (s *stringSet) list() []string {
	return s.values
}
