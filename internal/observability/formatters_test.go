package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/types"
	"github.com/stretchr/testify/assert"
)

const document = `---
title: Career blocks
owner: Ada
version: "2"
---
## SCALE & PERFORMANCE

### Cache
**Cut latency by 60% with Redis**

### Draft
not done yet
`

func TestPrintImportSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImportSummary(catalog.NewLoader(catalog.DefaultOptions()).Load(document))
	output := buf.String()

	assert.Contains(t, output, "IMPORTED ACHIEVEMENT BLOCKS")
	assert.Contains(t, output, "Owner:    Ada")
	assert.Contains(t, output, "Imported: 1 blocks from 2 achievements")
	assert.Contains(t, output, "Skipped 1")
	assert.Contains(t, output, "Draft")
	assert.Contains(t, output, "SCALE & PERFORMANCE (1)")
}

func TestPrintImportSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintImportSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBlocks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBlocks("SEARCH RESULTS", []types.Block{
		{Category: "SCALE", Title: "Cache", StrengthLevel: types.StrengthStrong, Skills: []string{"Redis", "Go"}},
	})
	output := buf.String()

	assert.Contains(t, output, "SEARCH RESULTS")
	assert.Contains(t, output, "Found 1 blocks")
	assert.Contains(t, output, "[strong] Cache")
	assert.Contains(t, output, "Redis, Go")
}

func TestPrintRankedBlocks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedBlocks(&types.RankedBlocks{Ranked: []types.RankedBlock{
		{Block: types.Block{Title: "Cache", StrengthLevel: types.StrengthGood}, Score: 6.5, MatchedSkills: []string{"Redis"}},
		{Block: types.Block{Title: "Queue", StrengthLevel: types.StrengthGood}, Score: 0.5},
	}}, 1)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED BLOCKS")
	assert.Contains(t, output, "6.50")
	assert.Contains(t, output, "Skills: Redis")
	assert.Contains(t, output, "... and 1 more blocks")
	assert.NotContains(t, output, "Queue")
}

func TestPrintRankedBlocks_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRankedBlocks(&types.RankedBlocks{}, 5)
	assert.Empty(t, buf.String())
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStats(types.CatalogStats{
		TotalBlocks:          3,
		Categories:           2,
		StrengthDistribution: types.StrengthDistribution{Essential: 1, Strong: 1, Good: 1},
		CategoryBreakdown:    []types.NameCount{{Name: "PERFORMANCE", Count: 2}, {Name: "LEADERSHIP", Count: 1}},
		TopSkills:            []types.NameCount{{Name: "AWS", Count: 2}},
	})
	output := buf.String()

	assert.Contains(t, output, "CATALOG STATISTICS")
	assert.Contains(t, output, "1 essential, 1 strong, 1 good")
	assert.Contains(t, output, "By category")
	assert.Contains(t, output, "PERFORMANCE")
	assert.Contains(t, output, "Top skills")
	assert.NotContains(t, output, "Top role types")
}

func TestPrintBox_ClipsLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("T", strings.Repeat("é", 200))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
