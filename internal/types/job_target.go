// Package types provides type definitions for structured data used throughout the achievement-blocks system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// JobTarget describes the job a set of blocks is ranked against.
// Requirements are free-text phrases, RequiredSkills canonical skill names.
type JobTarget struct {
	Requirements   []string `json:"job_requirements" validate:"max=200,dive,max=500"`
	RequiredSkills []string `json:"required_skills" validate:"max=200,dive,max=200"`
	PreferredRole  string   `json:"preferred_role,omitempty" validate:"max=200"`
}

// RankRequest is the API payload for ranking and selection
type RankRequest struct {
	JobTarget
	Filters   *SearchFilters `json:"filters,omitempty"`
	MaxBlocks int            `json:"max_blocks,omitempty" validate:"min=0,max=500"`
	MinScore  float64        `json:"min_score,omitempty" validate:"min=0"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
