package catalog

import (
	"strings"

	"github.com/jonathan/achievement-blocks/internal/types"
)

// Search returns the blocks matching every given filter, in import order.
// An unknown strength level token is an InvalidArgumentError; no matches is an empty slice.
func (c *Catalog) Search(filters types.SearchFilters) ([]types.Block, error) {
	m, err := newMatcher(filters)
	if err != nil {
		return nil, err
	}

	results := make([]types.Block, 0)
	for i := range c.blocks {
		if m.matches(&c.blocks[i]) {
			results = append(results, c.blocks[i].Clone())
		}
	}
	return results, nil
}

// matcher is a validated, normalized form of SearchFilters
type matcher struct {
	skills        []string
	roleType      string
	categoryLower string
	keyword       string
	keywordLower  string
	minStrength   types.StrengthLevel
}

func newMatcher(f types.SearchFilters) (*matcher, error) {
	m := &matcher{
		skills:        types.NonBlank(f.Skills),
		roleType:      strings.TrimSpace(f.RoleType),
		categoryLower: strings.ToLower(strings.TrimSpace(f.Category)),
		keyword:       strings.TrimSpace(f.Keywords),
	}
	m.keywordLower = strings.ToLower(m.keyword)

	if s := strings.TrimSpace(f.StrengthLevel); s != "" {
		level, err := types.ParseStrengthLevel(s)
		if err != nil {
			return nil, &InvalidArgumentError{Field: "strength_level", Message: "unknown strength level", Cause: err}
		}
		m.minStrength = level
	}
	return m, nil
}

func (m *matcher) matches(b *types.Block) bool {
	if len(m.skills) > 0 && !m.anySkill(b) {
		return false
	}
	if m.roleType != "" && !b.HasRoleType(m.roleType) {
		return false
	}
	if m.categoryLower != "" && !strings.Contains(strings.ToLower(b.Category), m.categoryLower) {
		return false
	}
	if m.keyword != "" &&
		!strings.Contains(strings.ToLower(b.Content), m.keywordLower) &&
		!b.HasKeyword(m.keyword) {
		return false
	}
	if m.minStrength != "" && !b.StrengthLevel.AtLeast(m.minStrength) {
		return false
	}
	return true
}

func (m *matcher) anySkill(b *types.Block) bool {
	for _, s := range m.skills {
		if b.HasSkill(s) {
			return true
		}
	}
	return false
}
