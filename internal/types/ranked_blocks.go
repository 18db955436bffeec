// Package types provides type definitions for structured data used throughout the achievement-blocks system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RankedBlocks represents an ordered ranking of blocks against one job target
type RankedBlocks struct {
	Ranked []RankedBlock `json:"ranked"`
}

// RankedBlock represents a single scored block.
// Position is the block's index in the ranked input and doubles as the tie-breaker.
type RankedBlock struct {
	Block               Block    `json:"block"`
	Position            int      `json:"position"`
	Score               float64  `json:"score"`
	MatchedRequirements []string `json:"matched_requirements"`
	MatchedSkills       []string `json:"matched_skills"`
	RoleMatch           bool     `json:"role_match"`
	Notes               string   `json:"notes"`
}

// Blocks returns the ranked blocks without their scores, in ranked order
func (r *RankedBlocks) Blocks() []Block {
	out := make([]Block, 0, len(r.Ranked))
	for _, rb := range r.Ranked {
		out = append(out, rb.Block)
	}
	return out
}
