// Package inference derives keywords, skills, role types, company types and a strength
// level for raw achievement entries. All inference is rule based and deterministic.
package inference

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jonathan/achievement-blocks/internal/schemas"
)

//go:embed vocabulary.json
var defaultVocabularyJSON []byte

// VocabularySchema is the schema file vocabulary overrides are validated against
const VocabularySchema = "vocabulary.schema.json"

// Vocabulary is the static, versioned lookup data consumed by the inference rules
type Vocabulary struct {
	Version             string              `json:"version"`
	Technologies        []string            `json:"technologies"`
	Terms               []string            `json:"terms"`
	SkillTerms          []string            `json:"skill_terms"`
	CaseSensitiveTerms  []string            `json:"case_sensitive_terms"`
	BusinessNouns       []string            `json:"business_nouns"`
	MetricUnits         []string            `json:"metric_units"`
	CategorySkills      map[string][]string `json:"category_skills"`
	CategoryRoleTypes   map[string][]string `json:"category_role_types"`
	SkillClues          []SkillClue         `json:"skill_clues"`
	LeadershipVerbs     []string            `json:"leadership_verbs"`
	ManagementCues      []string            `json:"management_cues"`
	FullStackCues       []string            `json:"fullstack_cues"`
	FrontendTerms       []string            `json:"frontend_terms"`
	BackendTerms        []string            `json:"backend_terms"`
	MLTerms             []string            `json:"ml_terms"`
	ScaleIndicators     []string            `json:"scale_indicators"`
	NoveltyIndicators   []string            `json:"novelty_indicators"`
	BusinessIndicators  []string            `json:"business_indicators"`
	DefaultCompanyTypes []string            `json:"default_company_types"`
	Strength            StrengthVocabulary  `json:"strength"`

	caseSensitive map[string]bool
	categoryIndex map[string]string
}

// SkillClue expands any of its cues into a skill that may never be spelled out
type SkillClue struct {
	Cues  []string `json:"cues"`
	Skill string   `json:"skill"`
}

// StrengthVocabulary holds the phrases behind the impact score
type StrengthVocabulary struct {
	HighImpact    []string `json:"high_impact"`
	MediumImpact  []string `json:"medium_impact"`
	StrongVerbs   []string `json:"strong_verbs"`
	ModerateVerbs []string `json:"moderate_verbs"`
	ScopeWords    []string `json:"scope_words"`
}

var (
	defaultVocabulary     *Vocabulary
	defaultVocabularyOnce sync.Once
)

// DefaultVocabulary returns the embedded vocabulary.
// It panics if the embedded file is broken, which is a build defect.
func DefaultVocabulary() *Vocabulary {
	defaultVocabularyOnce.Do(func() {
		v, err := ParseVocabulary(defaultVocabularyJSON)
		if err != nil {
			panic(fmt.Sprintf("failed to load embedded vocabulary: %v", err))
		}
		defaultVocabulary = v
	})
	return defaultVocabulary
}

// LoadVocabulary reads a vocabulary override file and validates it against its schema
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &VocabularyError{Message: fmt.Sprintf("failed to read vocabulary file %s", path), Cause: err}
	}
	if err := schemas.ValidateBytes(VocabularySchema, data); err != nil {
		return nil, &VocabularyError{Message: fmt.Sprintf("vocabulary file %s does not match schema", path), Cause: err}
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes vocabulary JSON and builds its lookup indexes
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &VocabularyError{Message: "failed to unmarshal vocabulary JSON", Cause: err}
	}
	v.index()
	return &v, nil
}

func (v *Vocabulary) index() {
	v.caseSensitive = make(map[string]bool, len(v.CaseSensitiveTerms))
	for _, term := range v.CaseSensitiveTerms {
		v.caseSensitive[term] = true
	}

	v.categoryIndex = make(map[string]string)
	for name := range v.CategorySkills {
		v.categoryIndex[categoryKey(name)] = name
	}
	for name := range v.CategoryRoleTypes {
		v.categoryIndex[categoryKey(name)] = name
	}
}

// categoryKey normalizes hand-typed category headings for table lookups
func categoryKey(category string) string {
	return strings.Join(strings.Fields(strings.ToUpper(category)), " ")
}

// CategorySkillsFor returns the baseline skills for a category, or nil if it has none
func (v *Vocabulary) CategorySkillsFor(category string) []string {
	return v.CategorySkills[v.categoryIndex[categoryKey(category)]]
}

// CategoryRoleTypesFor returns the baseline role types for a category, or nil if it has none
func (v *Vocabulary) CategoryRoleTypesFor(category string) []string {
	return v.CategoryRoleTypes[v.categoryIndex[categoryKey(category)]]
}
