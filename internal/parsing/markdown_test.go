package parsing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `# Career Achievements

Some preamble that should be ignored.

## 🏗️ SYSTEM ARCHITECTURE & DESIGN

Commentary under the category is ignored.

### Event-driven order pipeline
**Architected an event-driven pipeline processing 20TB+ daily across 30 services**

### Draft entry without content
Just some notes, no bold line.

## 🤖 MACHINE LEARNING & DATA SCIENCE

### Fraud model
**Built ML fraud model in Python saving $10M annually**
**A second bold line that must be ignored**

---
*Note: internal reminder*

## NOTES ON USAGE

### Should not appear
**Ignored because the notes section ends the document**
`

func TestParse_SampleDocument(t *testing.T) {
	doc := NewParser(DefaultOptions()).Parse(sampleDocument)

	require.Len(t, doc.Entries, 2)

	first := doc.Entries[0]
	assert.Equal(t, "SYSTEM ARCHITECTURE & DESIGN", first.Category)
	assert.Equal(t, "Event-driven order pipeline", first.Title)
	assert.Equal(t, "Architected an event-driven pipeline processing 20TB+ daily across 30 services", first.Content)
	assert.Nil(t, first.Subcategory)

	second := doc.Entries[1]
	assert.Equal(t, "MACHINE LEARNING & DATA SCIENCE", second.Category)
	assert.Equal(t, "Fraud model", second.Title)
	assert.Equal(t, "Built ML fraud model in Python saving $10M annually", second.Content)

	assert.Equal(t, 3, doc.Report.Headings)
	require.Len(t, doc.Report.Skipped, 1)
	assert.Equal(t, "Draft entry without content", doc.Report.Skipped[0].Title)
	assert.Equal(t, ReasonNoContent, doc.Report.Skipped[0].Reason)
	assert.Equal(t, "NOTES ON USAGE", doc.Report.StoppedAt)
}

func TestParse_ScenarioDocument(t *testing.T) {
	text := "## Architecture\n### Scaled the platform\n**Reduced latency by 60% for 10M+ users using AWS and Redis**\n"

	doc := NewParser(DefaultOptions()).Parse(text)

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "Architecture", doc.Entries[0].Category)
	assert.Equal(t, "Scaled the platform", doc.Entries[0].Title)
	assert.Equal(t, "Reduced latency by 60% for 10M+ users using AWS and Redis", doc.Entries[0].Content)
	assert.Equal(t, 2, doc.Entries[0].Line)
}

func TestParse_WindowsLineEndingsAndBlankLines(t *testing.T) {
	text := "\r\n\r\n## Scale\r\n\r\n### Throughput\r\n\r\n**Served 1B+ requests per day**\r\n\r\n\r\n"

	doc := NewParser(DefaultOptions()).Parse(text)

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "Scale", doc.Entries[0].Category)
	assert.Equal(t, "Throughput", doc.Entries[0].Title)
	assert.Equal(t, "Served 1B+ requests per day", doc.Entries[0].Content)
}

func TestParse_EmptyAndGarbageInput(t *testing.T) {
	p := NewParser(DefaultOptions())

	for _, text := range []string{"", "   \n\n", "no headings at all", "### orphan\n**content**", "**bold** without anything"} {
		doc := p.Parse(text)
		require.NotNil(t, doc)
		assert.Empty(t, doc.Entries, "input %q", text)
		assert.NotNil(t, doc.Entries)
	}
}

func TestParse_AchievementOutsideCategoryIsSkipped(t *testing.T) {
	doc := NewParser(DefaultOptions()).Parse("### Orphan\n**Has content**\n## Cat\n### Kept\n**Yes**")

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "Kept", doc.Entries[0].Title)
	require.Len(t, doc.Report.Skipped, 1)
	assert.Equal(t, ReasonNoCategory, doc.Report.Skipped[0].Reason)
}

func TestParse_BoldSpanWithinLine(t *testing.T) {
	doc := NewParser(DefaultOptions()).Parse("## Cat\n### Title\nplain text first\n- **Led a team of 8 engineers** (2021)\n")

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "Led a team of 8 engineers", doc.Entries[0].Content)
}

func TestParse_SectionHeadingEndsSpan(t *testing.T) {
	doc := NewParser(DefaultOptions()).Parse("## Cat\n### First\n## Next\n**belongs to nobody**\n")

	assert.Empty(t, doc.Entries)
	require.Len(t, doc.Report.Skipped, 1)
	assert.Equal(t, "First", doc.Report.Skipped[0].Title)
}

func TestParse_OtherHeadingLevelsAreOrdinaryLines(t *testing.T) {
	doc := NewParser(DefaultOptions()).Parse(
		"# Achievements\n## Cat\n### First\n#### Context\n# Aside\n**Shipped the thing**\n### Second\n#### **Inline bold heading**\n",
	)

	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "First", doc.Entries[0].Title)
	assert.Equal(t, "Shipped the thing", doc.Entries[0].Content)
	assert.Equal(t, "Second", doc.Entries[1].Title)
	assert.Equal(t, "Inline bold heading", doc.Entries[1].Content)
	assert.Equal(t, 2, doc.Report.Headings)
	assert.Empty(t, doc.Report.Skipped)
}

func TestParse_VeryLongLineKeepsLaterEntries(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	doc := NewParser(DefaultOptions()).Parse("## Cat\n### one\n**first**\n" + long + "\n### two\n**second**\n")

	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "one", doc.Entries[0].Title)
	assert.Equal(t, "two", doc.Entries[1].Title)
	assert.Equal(t, "second", doc.Entries[1].Content)
	assert.Equal(t, 5, doc.Entries[1].Line)
}

func TestParse_VeryLongContentLine(t *testing.T) {
	content := strings.Repeat("y", 2<<20)
	doc := NewParser(DefaultOptions()).Parse("## Cat\n### big\n**" + content + "**\n")

	require.Len(t, doc.Entries, 1)
	assert.Len(t, doc.Entries[0].Content, len(content))
}

func TestParse_CategoryDecoration(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"## 🏗️ SYSTEM ARCHITECTURE & DESIGN", "SYSTEM ARCHITECTURE & DESIGN"},
		{"## ⚙️ DEVOPS & OPERATIONAL EXCELLENCE ⚙️", "DEVOPS & OPERATIONAL EXCELLENCE"},
		{"🚀 ## INNOVATION", "INNOVATION"},
		{"##   Languages: C++  ", "Languages: C++"},
		{"## 👩‍💻 Full-Stack", "Full-Stack"},
		{"## **SCALE & PERFORMANCE**", "SCALE & PERFORMANCE"},
		{"## ⚡ **SCALE & PERFORMANCE** ⚡", "SCALE & PERFORMANCE"},
		{"## **⚡ SCALE**", "SCALE"},
		{"## **Bold** and plain", "**Bold** and plain"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			doc := NewParser(Options{}).Parse(tt.line + "\n### T\n**c**")
			require.Len(t, doc.Entries, 1)
			assert.Equal(t, tt.want, doc.Entries[0].Category)
		})
	}
}

func TestParse_NotAHeading(t *testing.T) {
	doc := NewParser(Options{}).Parse("## Cat\n###NoSpace\n**x**\n### Real\n**y**")

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "Real", doc.Entries[0].Title)
}

func TestParse_BoldStopSection(t *testing.T) {
	doc := NewParser(DefaultOptions()).Parse("## Cat\n### One\n**kept**\n## **NOTES ON USAGE**\n### Two\n**dropped**\n")

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "NOTES ON USAGE", doc.Report.StoppedAt)
}

func TestParse_StopSectionsDisabled(t *testing.T) {
	doc := NewParser(Options{}).Parse(sampleDocument)

	assert.Len(t, doc.Entries, 3)
	assert.Empty(t, doc.Report.StoppedAt)
}

func TestParse_FrontMatter(t *testing.T) {
	text := "---\ntitle: Career blocks\nowner: jane\nversion: 3\n---\n## Cat\n### T\n**content here**\n"

	doc := NewParser(DefaultOptions()).Parse(text)

	assert.Equal(t, "Career blocks", doc.Meta.Title)
	assert.Equal(t, "jane", doc.Meta.Owner)
	assert.Equal(t, "3", doc.Meta.Version)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, 7, doc.Entries[0].Line)
}

func TestParse_LeadingRuleIsNotFrontMatter(t *testing.T) {
	text := "---\n## Cat\n### T\n**content**\n---\n"

	doc := NewParser(DefaultOptions()).Parse(text)

	assert.True(t, doc.Meta.IsZero())
	require.Len(t, doc.Entries, 1)
}

func TestParse_Idempotent(t *testing.T) {
	p := NewParser(DefaultOptions())
	assert.Equal(t, p.Parse(sampleDocument), p.Parse(sampleDocument))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParseReader(t *testing.T) {
	p := NewParser(DefaultOptions())

	doc, err := p.ParseReader(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	assert.Len(t, doc.Entries, 2)

	_, err = p.ParseReader(failingReader{})
	require.Error(t, err)
	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Contains(t, err.Error(), "disk gone")
}
