package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/achievement-blocks/internal/types"
)

// Rank scores every block against the job target and returns them by descending score.
// Equal scores keep their input order, so identical inputs always rank identically.
func Rank(blocks []types.Block, target types.JobTarget) *types.RankedBlocks {
	q := newQuery(target)

	ranked := make([]types.RankedBlock, 0, len(blocks))
	for i := range blocks {
		ranked = append(ranked, scoreBlock(&blocks[i], i, q))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return &types.RankedBlocks{Ranked: ranked}
}

// ScoreBlock returns the relevance score of a single block
func ScoreBlock(block types.Block, target types.JobTarget) float64 {
	return scoreBlock(&block, 0, newQuery(target)).Score
}

func scoreBlock(b *types.Block, position int, q query) types.RankedBlock {
	bt := newBlockText(b)
	score := 0.0

	matchedRequirements := make([]string, 0)
	for i, reqLower := range q.requirementsLower {
		if s := requirementScore(bt, reqLower); s > 0 {
			score += s
			matchedRequirements = append(matchedRequirements, q.requirements[i])
		}
	}

	matchedSkills := make([]string, 0)
	for i, skill := range q.skills {
		if s := skillScore(b, bt, skill, q.skillsLower[i]); s > 0 {
			score += s
			matchedSkills = append(matchedSkills, skill)
		}
	}

	roleMatch := q.role != "" && b.HasRoleType(q.role)
	if roleMatch {
		score += roleMatchWeight
	}

	score += strengthBonus(b.StrengthLevel)
	score += keywordDensityBonus(b, q.requirements)

	return types.RankedBlock{
		Block:               b.Clone(),
		Position:            position,
		Score:               score,
		MatchedRequirements: matchedRequirements,
		MatchedSkills:       matchedSkills,
		RoleMatch:           roleMatch,
		Notes:               generateNotes(len(q.requirements), matchedRequirements, matchedSkills, roleMatch, b.StrengthLevel),
	}
}

// generateNotes creates a brief explanation of the ranking.
func generateNotes(totalRequirements int, matchedRequirements, matchedSkills []string, roleMatch bool, level types.StrengthLevel) string {
	var parts []string

	if totalRequirements > 0 {
		if len(matchedRequirements) > 0 {
			parts = append(parts, fmt.Sprintf("Matches %d/%d requirements (%s)",
				len(matchedRequirements), totalRequirements, strings.Join(matchedRequirements, ", ")))
		} else {
			parts = append(parts, "No requirement matches")
		}
	}

	if len(matchedSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Skill match (%s)", strings.Join(matchedSkills, ", ")))
	}

	if roleMatch {
		parts = append(parts, "Preferred role match")
	}

	switch level {
	case types.StrengthEssential:
		parts = append(parts, "Essential strength")
	case types.StrengthStrong:
		parts = append(parts, "Strong strength")
	default:
		parts = append(parts, "Good strength")
	}

	return strings.Join(parts, ". ")
}
