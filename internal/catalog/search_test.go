package catalog

import (
	"errors"
	"testing"

	"github.com/jonathan/achievement-blocks/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() *Catalog {
	return New([]types.Block{
		{
			Category: "SCALE & PERFORMANCE", Title: "Cache", Content: "Cut p99 latency by 60% with Redis",
			Skills: []string{"Redis", "Performance"}, Keywords: []string{"Redis", "60%"},
			StrengthLevel: types.StrengthStrong, RoleTypes: []string{"Backend Engineer"}, CompanyTypes: []string{"Big Tech"},
		},
		{
			Category: "MACHINE LEARNING & DATA SCIENCE", Title: "Models", Content: "Shipped ML models to 1B+ users",
			Skills: []string{"Machine Learning"}, Keywords: []string{"ML", "1B+ users"},
			StrengthLevel: types.StrengthEssential, RoleTypes: []string{"ML Engineer"}, CompanyTypes: []string{"ML/AI Company"},
		},
		{
			Category: "SCALE & PERFORMANCE", Title: "Queue", Content: "Replaced cron jobs with a queue",
			Skills: []string{"Kafka"}, Keywords: []string{"Kafka"},
			StrengthLevel: types.StrengthGood, RoleTypes: []string{"Backend Engineer"}, CompanyTypes: []string{"Startup"},
		},
	}, parsingMetaForTest())
}

func TestSearch_NoFiltersReturnsAllInOrder(t *testing.T) {
	got, err := fixtureCatalog().Search(types.SearchFilters{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cache", "Models", "Queue"}, titles(got))
}

func TestSearch_Filters(t *testing.T) {
	c := fixtureCatalog()

	tests := []struct {
		name    string
		filters types.SearchFilters
		want    []string
	}{
		{"skills any of", types.SearchFilters{Skills: []string{"kafka", "redis"}}, []string{"Cache", "Queue"}},
		{"role exact", types.SearchFilters{RoleType: "Backend Engineer"}, []string{"Cache", "Queue"}},
		{"role substring does not match", types.SearchFilters{RoleType: "Backend"}, []string{}},
		{"category substring case-insensitive", types.SearchFilters{Category: "scale"}, []string{"Cache", "Queue"}},
		{"keyword in content", types.SearchFilters{Keywords: "cron"}, []string{"Queue"}},
		{"keyword in keyword set", types.SearchFilters{Keywords: "1b+ users"}, []string{"Models"}},
		{"strength minimum strong", types.SearchFilters{StrengthLevel: "strong"}, []string{"Cache", "Models"}},
		{"strength minimum good", types.SearchFilters{StrengthLevel: "GOOD"}, []string{"Cache", "Models", "Queue"}},
		{"conjunction", types.SearchFilters{Category: "scale", StrengthLevel: "strong"}, []string{"Cache"}},
		{"no matches", types.SearchFilters{Skills: []string{"Haskell"}}, []string{}},
		{"blank skills ignored", types.SearchFilters{Skills: []string{" "}}, []string{"Cache", "Models", "Queue"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Search(tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSearch_ConjunctionIsSubset(t *testing.T) {
	c := fixtureCatalog()
	f1 := types.SearchFilters{Category: "SCALE"}
	f2 := types.SearchFilters{Skills: []string{"Redis", "Machine Learning"}}
	both := types.SearchFilters{Category: f1.Category, Skills: f2.Skills}

	r1, err := c.Search(f1)
	require.NoError(t, err)
	r2, err := c.Search(f2)
	require.NoError(t, err)
	rb, err := c.Search(both)
	require.NoError(t, err)

	for _, title := range titles(rb) {
		assert.Contains(t, titles(r1), title)
		assert.Contains(t, titles(r2), title)
	}
}

func TestSearch_InvalidStrength(t *testing.T) {
	_, err := fixtureCatalog().Search(types.SearchFilters{StrengthLevel: "legendary"})
	require.Error(t, err)

	var argErr *InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "strength_level", argErr.Field)
}

func TestSearch_ResultsAreCopies(t *testing.T) {
	c := fixtureCatalog()
	got, err := c.Search(types.SearchFilters{})
	require.NoError(t, err)

	got[0].Skills[0] = "changed"
	again, err := c.Search(types.SearchFilters{})
	require.NoError(t, err)
	assert.Equal(t, "Redis", again[0].Skills[0])
}
