package inference

import (
	"regexp"

	"github.com/jonathan/achievement-blocks/internal/types"
)

// Strength tier thresholds over the impact score
const (
	EssentialThreshold = 5
	StrongThreshold    = 3
)

var (
	digitPattern = regexp.MustCompile(`\d`)
	// amounts of a billion dollars or ten million and up
	largeMoneyPattern = regexp.MustCompile(`\$(?:\d+(?:\.\d+)?B|[1-9]\d+(?:\.\d+)?M)`)
)

// Impact is the breakdown of the integer impact score behind a strength level
type Impact struct {
	Magnitude  int `json:"magnitude"`  // 3 large impact, 2 notable impact, 1 any number
	Leadership int `json:"leadership"` // 2 strong ownership verbs, 1 moderate verbs
	Scope      int `json:"scope"`      // 1 totalising scope words
}

// Total returns the impact score
func (i Impact) Total() int {
	return i.Magnitude + i.Leadership + i.Scope
}

// ScoreImpact computes the impact signals of content
func (in *Inferencer) ScoreImpact(content string) Impact {
	t := newText(content)
	v := in.vocab
	s := v.Strength

	var impact Impact
	switch {
	case t.hasAny(s.HighImpact, v.caseSensitive) || largeMoneyPattern.MatchString(content):
		impact.Magnitude = 3
	case t.hasAny(s.MediumImpact, v.caseSensitive):
		impact.Magnitude = 2
	case digitPattern.MatchString(content):
		impact.Magnitude = 1
	}

	switch {
	case t.hasAny(s.StrongVerbs, v.caseSensitive):
		impact.Leadership = 2
	case t.hasAny(s.ModerateVerbs, v.caseSensitive):
		impact.Leadership = 1
	}

	if t.hasAny(s.ScopeWords, v.caseSensitive) {
		impact.Scope = 1
	}
	return impact
}

// StrengthFor maps an impact score to its tier. The mapping is monotonic.
func StrengthFor(score int) types.StrengthLevel {
	switch {
	case score >= EssentialThreshold:
		return types.StrengthEssential
	case score >= StrongThreshold:
		return types.StrengthStrong
	default:
		return types.StrengthGood
	}
}
