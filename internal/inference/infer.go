package inference

import (
	"regexp"

	"github.com/jonathan/achievement-blocks/internal/parsing"
	"github.com/jonathan/achievement-blocks/internal/types"
)

// Inferencer turns raw entries into complete blocks using one vocabulary
type Inferencer struct {
	vocab        *Vocabulary
	units        *regexp.Regexp
	roleRules    []Rule
	companyRules []Rule
}

// New creates an inferencer. A nil vocabulary selects the embedded default.
func New(v *Vocabulary) *Inferencer {
	if v == nil {
		v = DefaultVocabulary()
	}
	if v.caseSensitive == nil || v.categoryIndex == nil {
		v.index()
	}
	return &Inferencer{
		vocab:        v,
		units:        unitPattern(v.MetricUnits),
		roleRules:    RoleRules(),
		companyRules: CompanyRules(),
	}
}

// Vocabulary returns the vocabulary in use
func (in *Inferencer) Vocabulary() *Vocabulary {
	return in.vocab
}

// Infer produces a complete block from a raw entry
func (in *Inferencer) Infer(entry parsing.RawEntry) types.Block {
	var subcategory *string
	if entry.Subcategory != nil {
		s := *entry.Subcategory
		subcategory = &s
	}
	return types.Block{
		Category:      entry.Category,
		Subcategory:   subcategory,
		Title:         entry.Title,
		Content:       entry.Content,
		Skills:        in.InferSkills(entry.Category, entry.Content),
		Keywords:      in.ExtractKeywords(entry.Content),
		StrengthLevel: StrengthFor(in.ScoreImpact(entry.Content).Total()),
		RoleTypes:     in.InferRoleTypes(entry.Category, entry.Title, entry.Content),
		CompanyTypes:  in.InferCompanyTypes(entry.Category, entry.Title, entry.Content),
	}
}

// InferAll runs Infer over entries in order
func (in *Inferencer) InferAll(entries []parsing.RawEntry) []types.Block {
	blocks := make([]types.Block, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, in.Infer(e))
	}
	return blocks
}

// InferSkills unions the category's baseline skills, vocabulary technologies and
// skill terms found in content, and skills implied by context clues.
func (in *Inferencer) InferSkills(category, content string) []string {
	t := newText(content)
	v := in.vocab
	skills := newStringSet()

	skills.add(v.CategorySkillsFor(category)...)

	for _, terms := range [][]string{v.Technologies, v.SkillTerms} {
		for _, term := range terms {
			if t.has(term, v.caseSensitive[term]) {
				skills.add(term)
			}
		}
	}

	for _, clue := range v.SkillClues {
		if t.hasAny(clue.Cues, v.caseSensitive) {
			skills.add(clue.Skill)
		}
	}
	return skills.list()
}

// InferRoleTypes unions the category's role types with those added by content rules
func (in *Inferencer) InferRoleTypes(category, title, content string) []string {
	roles := newStringSet()
	roles.add(in.vocab.CategoryRoleTypesFor(category)...)
	applyRules(in.roleRules, newSignals(in.vocab, category, title, content), roles)
	return roles.list()
}

// InferCompanyTypes applies the company rules, falling back to the default
// archetypes when none fires.
func (in *Inferencer) InferCompanyTypes(category, title, content string) []string {
	companies := newStringSet()
	applyRules(in.companyRules, newSignals(in.vocab, category, title, content), companies)
	if len(companies.list()) == 0 {
		companies.add(in.vocab.DefaultCompanyTypes...)
	}
	return companies.list()
}
