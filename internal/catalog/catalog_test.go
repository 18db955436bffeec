package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/achievement-blocks/internal/parsing"
	"github.com/jonathan/achievement-blocks/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `# Career Achievements

## 🏗️ SYSTEM ARCHITECTURE & DESIGN

### Payments platform
**Architected the payments platform handling $25M in yearly volume on AWS**

### Draft without content
Still writing this one.

## 🤖 MACHINE LEARNING & DATA SCIENCE

### Ranking models
**Led 4 scientists to ship ML ranking models serving 1B+ requests with zero downtime**

### Feature store
**Implemented a feature store in Python on Redis**

## 🚀 INNOVATION & EXPERIMENTATION

### Experiment platform
**Built an A/B testing platform from scratch as the sole engineer**

## NOTES ON USING THESE BLOCKS

### Not an achievement
**This should never be imported**
`

func loadSample(t *testing.T) *Catalog {
	t.Helper()
	return NewLoader(DefaultOptions()).Load(sampleDocument)
}

func titles(blocks []types.Block) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Title)
	}
	return out
}

func TestLoad_Sample(t *testing.T) {
	c := loadSample(t)

	require.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"Payments platform", "Ranking models", "Feature store", "Experiment platform"}, titles(c.Blocks()))
	assert.Equal(t, "SYSTEM ARCHITECTURE & DESIGN", c.Blocks()[0].Category)

	report := c.Report()
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "Draft without content", report.Skipped[0].Title)
	assert.Equal(t, "NOTES ON USING THESE BLOCKS", report.StoppedAt)

	for _, b := range c.Blocks() {
		assert.NotEmpty(t, b.Category)
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Content)
		assert.True(t, b.StrengthLevel.Valid())
		assert.NotNil(t, b.Skills)
		assert.NotNil(t, b.Keywords)
		assert.NotNil(t, b.RoleTypes)
		assert.NotNil(t, b.CompanyTypes)
	}
}

func TestLoad_Idempotent(t *testing.T) {
	a := loadSample(t)
	b := loadSample(t)
	assert.Equal(t, a.Blocks(), b.Blocks())
}

func TestLoad_EmptyDocument(t *testing.T) {
	c := NewLoader(DefaultOptions()).Load("")
	assert.Equal(t, 0, c.Len())
	assert.NotNil(t, c.Blocks())

	found, err := c.Search(types.SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "achievements.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0644))

	c, err := NewLoader(DefaultOptions()).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, path, c.Source())
	assert.False(t, c.ImportedAt().IsZero())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := NewLoader(DefaultOptions()).LoadFile(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadReader(t *testing.T) {
	c, err := NewLoader(DefaultOptions()).LoadReader(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Empty(t, c.Source())
}

func TestNew_OwnsBlocks(t *testing.T) {
	blocks := []types.Block{{Category: "A", Title: "t", Content: "c", Skills: []string{"Go"}, StrengthLevel: types.StrengthGood}}
	c := New(blocks, parsing.DocumentMeta{Owner: "Ada"})

	blocks[0].Skills[0] = "changed"
	assert.Equal(t, "Go", c.Blocks()[0].Skills[0])
	assert.Equal(t, "Ada", c.Meta().Owner)

	got := c.Blocks()
	got[0].Title = "mutated"
	assert.Equal(t, "t", c.Blocks()[0].Title)
}

func TestStore_Swap(t *testing.T) {
	s := NewStore(nil)
	require.NotNil(t, s.Load())
	assert.Equal(t, 0, s.Load().Len())

	next := loadSample(t)
	old := s.Swap(next)
	assert.Equal(t, 0, old.Len())
	assert.Same(t, next, s.Load())

	s.Swap(nil)
	assert.Equal(t, 0, s.Load().Len())
}
