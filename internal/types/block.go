// Package types provides type definitions for structured data used throughout the achievement-blocks system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// StrengthLevel is the qualitative impact tier of a block
type StrengthLevel string

const (
	StrengthGood      StrengthLevel = "good"
	StrengthStrong    StrengthLevel = "strong"
	StrengthEssential StrengthLevel = "essential"
)

// StrengthLevels lists every tier in ascending order
var StrengthLevels = []StrengthLevel{StrengthGood, StrengthStrong, StrengthEssential}

// ParseStrengthLevel converts a caller-supplied token into a StrengthLevel.
// Matching is case-insensitive; unknown tokens return an error.
func ParseStrengthLevel(s string) (StrengthLevel, error) {
	level := StrengthLevel(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", fmt.Errorf("unknown strength level %q (expected good, strong or essential)", s)
	}
	return level, nil
}

// Valid reports whether the level is one of the three known tiers
func (l StrengthLevel) Valid() bool {
	return l.Ordinal() >= 0
}

// Ordinal returns the position of the level in good < strong < essential, or -1 if unknown
func (l StrengthLevel) Ordinal() int {
	switch l {
	case StrengthGood:
		return 0
	case StrengthStrong:
		return 1
	case StrengthEssential:
		return 2
	default:
		return -1
	}
}

// AtLeast reports whether l is the same tier as min or a higher one
func (l StrengthLevel) AtLeast(min StrengthLevel) bool {
	return l.Ordinal() >= min.Ordinal()
}

// Block represents a single achievement parsed from the achievement document.
// Set-valued fields are never nil once a block is built; an empty set is an empty slice.
type Block struct {
	Category      string        `json:"category"`
	Subcategory   *string       `json:"subcategory"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	Skills        []string      `json:"skills"`
	Keywords      []string      `json:"keywords"`
	StrengthLevel StrengthLevel `json:"strength_level"`
	RoleTypes     []string      `json:"role_types"`
	CompanyTypes  []string      `json:"company_types"`
}

// Clone returns a deep copy of the block
func (b Block) Clone() Block {
	out := b
	if b.Subcategory != nil {
		sub := *b.Subcategory
		out.Subcategory = &sub
	}
	out.Skills = cloneStrings(b.Skills)
	out.Keywords = cloneStrings(b.Keywords)
	out.RoleTypes = cloneStrings(b.RoleTypes)
	out.CompanyTypes = cloneStrings(b.CompanyTypes)
	return out
}

// HasSkill reports whether the block carries the skill, ignoring case
func (b Block) HasSkill(skill string) bool {
	return containsFold(b.Skills, skill)
}

// HasKeyword reports whether the keyword set contains kw, ignoring case
func (b Block) HasKeyword(kw string) bool {
	return containsFold(b.Keywords, kw)
}

// HasRoleType reports exact membership of role in the block's role types
func (b Block) HasRoleType(role string) bool {
	for _, r := range b.RoleTypes {
		if r == role {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
