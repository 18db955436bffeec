package inference

import "strings"

// signals is everything a rule may look at for one entry
type signals struct {
	category text
	title    text
	content  text
	vocab    *Vocabulary
}

func (s *signals) contentHas(terms []string) bool {
	return s.content.hasAny(terms, s.vocab.caseSensitive)
}

// Rule adds its tags when its predicate holds. Rules are evaluated independently and
// their tags unioned in rule order.
type Rule struct {
	Name  string
	Tags  []string
	match func(*signals) bool
}

// RoleRules returns the content rules that add role types beyond the category table
func RoleRules() []Rule {
	return []Rule{
		{
			Name: "leadership",
			Tags: []string{"Senior Engineer", "Tech Lead"},
			match: func(s *signals) bool {
				return s.contentHas(s.vocab.LeadershipVerbs) || s.title.has("team", false)
			},
		},
		{
			Name: "management",
			Tags: []string{"Engineering Manager"},
			match: func(s *signals) bool {
				return s.contentHas(s.vocab.ManagementCues)
			},
		},
		{
			Name: "full-stack",
			Tags: []string{"Full-Stack Engineer"},
			match: func(s *signals) bool {
				return s.contentHas(s.vocab.FullStackCues) ||
					(s.contentHas(s.vocab.FrontendTerms) && s.contentHas(s.vocab.BackendTerms))
			},
		},
		{
			Name: "machine-learning",
			Tags: []string{"ML Engineer"},
			match: func(s *signals) bool {
				return s.contentHas(s.vocab.MLTerms)
			},
		},
	}
}

// CompanyRules returns the rules that map content signals to company archetypes
func CompanyRules() []Rule {
	return []Rule{
		{
			Name: "scale",
			Tags: []string{"Big Tech"},
			match: func(s *signals) bool {
				return s.contentHas(s.vocab.ScaleIndicators)
			},
		},
		{
			Name: "novelty",
			Tags: []string{"Startup", "Scale-up"},
			match: func(s *signals) bool {
				return s.contentHas(s.vocab.NoveltyIndicators)
			},
		},
		{
			Name: "business",
			Tags: []string{"Product-focused"},
			match: func(s *signals) bool {
				return s.contentHas(s.vocab.BusinessIndicators)
			},
		},
		{
			Name: "ml-ai",
			Tags: []string{"ML/AI Company"},
			match: func(s *signals) bool {
				return s.contentHas(s.vocab.MLTerms) ||
					strings.Contains(categoryKey(s.category.raw), "MACHINE LEARNING")
			},
		},
	}
}

// applyRules unions the tags of every rule that matches
func applyRules(rules []Rule, s *signals, into *stringSet) {
	for _, r := range rules {
		if r.match(s) {
			into.add(r.Tags...)
		}
	}
}

// Matches reports whether the rule fires for the given entry under vocabulary v
func (r Rule) Matches(v *Vocabulary, category, title, content string) bool {
	return r.match(newSignals(v, category, title, content))
}

func newSignals(v *Vocabulary, category, title, content string) *signals {
	return &signals{
		category: newText(category),
		title:    newText(title),
		content:  newText(content),
		vocab:    v,
	}
}
