package ranking

import (
	"github.com/jonathan/achievement-blocks/internal/types"
)

// Coverage lists, for one requirement, the ranked blocks that match it
type Coverage struct {
	Requirement string   `json:"requirement"`
	Titles      []string `json:"titles"`
}

// CoverageMatrix reports which selected blocks satisfy each requirement of the target.
// Requirements no block covers come back with an empty title list.
func CoverageMatrix(ranked []types.RankedBlock, target types.JobTarget) []Coverage {
	q := newQuery(target)
	matrix := make([]Coverage, 0, len(q.requirements))

	for i, req := range q.requirements {
		row := Coverage{Requirement: req, Titles: make([]string, 0)}
		for j := range ranked {
			bt := newBlockText(&ranked[j].Block)
			if requirementScore(bt, q.requirementsLower[i]) > 0 {
				row.Titles = append(row.Titles, ranked[j].Block.Title)
			}
		}
		matrix = append(matrix, row)
	}
	return matrix
}

// Uncovered returns the requirements no block in the matrix satisfies
func Uncovered(matrix []Coverage) []string {
	out := make([]string, 0)
	for _, row := range matrix {
		if len(row.Titles) == 0 {
			out = append(out, row.Requirement)
		}
	}
	return out
}
