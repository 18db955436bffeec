// Package types provides type definitions for structured data used throughout the achievement-blocks system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CatalogStats summarizes a catalog
type CatalogStats struct {
	TotalBlocks          int                  `json:"total_blocks"`
	Categories           int                  `json:"categories"`
	CategoryBreakdown    []NameCount          `json:"category_breakdown"`
	StrengthDistribution StrengthDistribution `json:"strength_distribution"`
	TopSkills            []NameCount          `json:"top_skills"`
	TopRoleTypes         []NameCount          `json:"top_role_types"`
}

// StrengthDistribution is the per-tier block histogram
type StrengthDistribution struct {
	Essential int `json:"essential"`
	Strong    int `json:"strong"`
	Good      int `json:"good"`
}

// Add counts one block of the given level
func (d *StrengthDistribution) Add(level StrengthLevel) {
	switch level {
	case StrengthEssential:
		d.Essential++
	case StrengthStrong:
		d.Strong++
	case StrengthGood:
		d.Good++
	}
}

// NameCount pairs a label with its number of occurrences
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
