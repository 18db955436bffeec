// Package types provides type definitions for structured data used throughout the achievement-blocks system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SearchFilters holds the optional, AND-combined search criteria over a catalog.
// Empty fields are treated as "not given".
type SearchFilters struct {
	Skills        []string `json:"skills,omitempty" validate:"max=100,dive,max=200"`
	RoleType      string   `json:"role_type,omitempty" validate:"max=200"`
	Category      string   `json:"category,omitempty" validate:"max=200"`
	Keywords      string   `json:"keywords,omitempty" validate:"max=500"`
	StrengthLevel string   `json:"strength_level,omitempty" validate:"max=32"` // minimum tier
}

// Validate checks the size limits of the filters. Token values such as the strength
// level are checked by the catalog when the search runs.
func (f *SearchFilters) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// IsEmpty reports whether no filter dimension is set
func (f SearchFilters) IsEmpty() bool {
	return len(nonBlank(f.Skills)) == 0 &&
		strings.TrimSpace(f.RoleType) == "" &&
		strings.TrimSpace(f.Category) == "" &&
		strings.TrimSpace(f.Keywords) == "" &&
		strings.TrimSpace(f.StrengthLevel) == ""
}

// nonBlank returns the trimmed, non-empty entries of values
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// NonBlank trims every entry and drops the empty ones
func NonBlank(values []string) []string {
	return nonBlank(values)
}
