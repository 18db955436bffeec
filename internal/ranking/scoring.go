// Package ranking scores achievement blocks against a job target and orders them by relevance.
package ranking

import (
	"strings"

	"github.com/jonathan/achievement-blocks/internal/types"
)

// Score contributions. Callers depend on the relative ordering these produce.
const (
	requirementInContentWeight = 3.0
	requirementInTitleWeight   = 2.0
	requirementInKeywordWeight = 1.5

	skillInSkillsWeight  = 2.5
	skillInContentWeight = 1.5

	roleMatchWeight = 2.0

	essentialBonus = 2.0
	strongBonus    = 1.0
	goodBonus      = 0.5

	keywordDensityWeight = 0.5
)

// query is a job target with blank entries dropped and lowercase forms precomputed
type query struct {
	requirements      []string
	requirementsLower []string
	skills            []string
	skillsLower       []string
	role              string
}

func newQuery(target types.JobTarget) query {
	q := query{
		requirements: types.NonBlank(target.Requirements),
		skills:       types.NonBlank(target.RequiredSkills),
		role:         strings.TrimSpace(target.PreferredRole),
	}
	q.requirementsLower = lowerAll(q.requirements)
	q.skillsLower = lowerAll(q.skills)
	return q
}

// blockText caches the lowercase fields of a block that scoring reads repeatedly
type blockText struct {
	content  string
	title    string
	keywords []string
}

func newBlockText(b *types.Block) blockText {
	return blockText{
		content:  strings.ToLower(b.Content),
		title:    strings.ToLower(b.Title),
		keywords: lowerAll(b.Keywords),
	}
}

// requirementScore applies the first of content, title or keyword substring matches
func requirementScore(bt blockText, reqLower string) float64 {
	switch {
	case strings.Contains(bt.content, reqLower):
		return requirementInContentWeight
	case strings.Contains(bt.title, reqLower):
		return requirementInTitleWeight
	}
	for _, kw := range bt.keywords {
		if strings.Contains(kw, reqLower) {
			return requirementInKeywordWeight
		}
	}
	return 0
}

// skillScore prefers a tagged skill over a mention in content
func skillScore(b *types.Block, bt blockText, skill, skillLower string) float64 {
	if b.HasSkill(skill) {
		return skillInSkillsWeight
	}
	if strings.Contains(bt.content, skillLower) {
		return skillInContentWeight
	}
	return 0
}

func strengthBonus(level types.StrengthLevel) float64 {
	switch level {
	case types.StrengthEssential:
		return essentialBonus
	case types.StrengthStrong:
		return strongBonus
	case types.StrengthGood:
		return goodBonus
	default:
		return 0
	}
}

// keywordDensityBonus adds a fixed amount for each requirement that is itself one of the block's keywords
func keywordDensityBonus(b *types.Block, requirements []string) float64 {
	bonus := 0.0
	for _, req := range requirements {
		if b.HasKeyword(req) {
			bonus += keywordDensityWeight
		}
	}
	return bonus
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
