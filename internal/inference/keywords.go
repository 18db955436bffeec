package inference

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	acronymPattern  = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
	moneyPattern    = regexp.MustCompile(`\$\d+(?:[.,]\d+)*[KMB]?\+?`)
	percentPattern  = regexp.MustCompile(`\d+(?:\.\d+)?%\+?`)
	quantityPattern = regexp.MustCompile(`\d+(?:\.\d+)?(?:(?:TB|PB|GB|[KMB])\+?|\+)`)
)

// unitPattern builds the "<number>+ <unit>" matcher from the vocabulary's metric units
func unitPattern(units []string) *regexp.Regexp {
	if len(units) == 0 {
		return nil
	}
	quoted := make([]string, len(units))
	for i, u := range units {
		quoted[i] = regexp.QuoteMeta(u)
	}
	return regexp.MustCompile(`\d+(?:\.\d+)?[KMB]?\+?\s*(?i:` + strings.Join(quoted, "|") + `)\b`)
}

// ExtractKeywords returns the salient terms of content: vocabulary technologies and
// terms, uppercase acronyms, quantitative metrics and business nouns.
func (in *Inferencer) ExtractKeywords(content string) []string {
	t := newText(content)
	v := in.vocab
	keywords := newStringSet()

	for _, terms := range [][]string{v.Technologies, v.Terms} {
		for _, term := range terms {
			if t.has(term, v.caseSensitive[term]) {
				keywords.add(term)
			}
		}
	}

	keywords.add(acronymPattern.FindAllString(content, -1)...)
	keywords.add(extractMetrics(content, in.units)...)

	for _, noun := range v.BusinessNouns {
		if t.has(noun, v.caseSensitive[noun]) {
			keywords.add(noun)
		}
	}

	return keywords.list()
}

// extractMetrics finds money amounts, percentages, sized quantities and counted units
func extractMetrics(content string, units *regexp.Regexp) []string {
	metrics := make([]string, 0)
	metrics = append(metrics, moneyPattern.FindAllString(content, -1)...)
	for _, loc := range percentPattern.FindAllStringIndex(content, -1) {
		if standaloneNumber(content, loc[0]) {
			metrics = append(metrics, content[loc[0]:loc[1]])
		}
	}
	for _, loc := range quantityPattern.FindAllStringIndex(content, -1) {
		if standaloneNumber(content, loc[0]) && !gluedRight(content, loc[1]) {
			metrics = append(metrics, content[loc[0]:loc[1]])
		}
	}
	if units != nil {
		for _, loc := range units.FindAllStringIndex(content, -1) {
			if standaloneNumber(content, loc[0]) {
				metrics = append(metrics, content[loc[0]:loc[1]])
			}
		}
	}
	return metrics
}

// standaloneNumber reports whether the number starting at i is not the tail of a
// longer token such as "$10M", "v2" or "1.5".
func standaloneNumber(s string, i int) bool {
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev) && prev != '$' && prev != '.' && prev != ','
}

func gluedRight(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	next, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(next) || unicode.IsDigit(next)
}
