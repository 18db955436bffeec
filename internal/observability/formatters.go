// Package observability provides formatted output utilities for human-readable CLI reports.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for console reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(clip(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintImportSummary outputs what an import produced and what it skipped.
func (p *Printer) PrintImportSummary(c *catalog.Catalog) {
	if c == nil {
		return
	}

	var sb strings.Builder
	if c.Source() != "" {
		sb.WriteString(fmt.Sprintf("Document: %s\n", c.Source()))
	}
	if meta := c.Meta(); !meta.IsZero() {
		if meta.Title != "" {
			sb.WriteString(fmt.Sprintf("Title:    %s\n", meta.Title))
		}
		if meta.Owner != "" {
			sb.WriteString(fmt.Sprintf("Owner:    %s\n", meta.Owner))
		}
		if meta.Version != "" {
			sb.WriteString(fmt.Sprintf("Version:  %s\n", meta.Version))
		}
	}

	report := c.Report()
	sb.WriteString(fmt.Sprintf("Imported: %d blocks from %d achievements\n", c.Len(), report.Headings))
	if report.StoppedAt != "" {
		sb.WriteString(fmt.Sprintf("Stopped at: %s\n", report.StoppedAt))
	}

	if len(report.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped %d:\n", len(report.Skipped)))
		count := min(len(report.Skipped), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := report.Skipped[i]
			title := s.Title
			if title == "" {
				title = "(untitled)"
			}
			sb.WriteString(fmt.Sprintf("  • line %d %s: %s\n", s.Line, title, s.Reason))
		}
		if len(report.Skipped) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Skipped)-maxItemsToShow))
		}
	}

	groups := c.GroupByCategory()
	if len(groups) > 0 {
		sb.WriteString("\nCategories:\n")
		for _, g := range groups {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", g.Category, len(g.Blocks)))
		}
	}

	p.printBox("IMPORTED ACHIEVEMENT BLOCKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBlocks outputs a listing of blocks, e.g. search results.
func (p *Printer) PrintBlocks(title string, blocks []types.Block) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d blocks\n", len(blocks)))

	for i, b := range blocks {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, b.StrengthLevel, b.Title))
		sb.WriteString(fmt.Sprintf("   %s\n", b.Category))
		if len(b.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("   Skills: %s\n", strings.Join(b.Skills, ", ")))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedBlocks outputs the top N ranked blocks with scores and matches.
func (p *Printer) PrintRankedBlocks(ranked *types.RankedBlocks, limit int) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}
	if limit <= 0 {
		limit = maxItemsToShow
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total blocks ranked: %d\n\n", len(ranked.Ranked)))

	count := min(len(ranked.Ranked), limit)
	for i := 0; i < count; i++ {
		rb := ranked.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rb.Block.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f  (%s)\n", rb.Score, rb.Block.StrengthLevel))
		if len(rb.MatchedRequirements) > 0 {
			sb.WriteString(fmt.Sprintf("    Requirements: %s\n", strings.Join(rb.MatchedRequirements, ", ")))
		}
		if len(rb.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", strings.Join(rb.MatchedSkills, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked.Ranked) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more blocks", len(ranked.Ranked)-count))
	}

	p.printBox("TOP RANKED BLOCKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs the catalog summary statistics.
func (p *Printer) PrintStats(stats types.CatalogStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total blocks: %d\n", stats.TotalBlocks))
	sb.WriteString(fmt.Sprintf("Categories:   %d\n", stats.Categories))
	sb.WriteString(fmt.Sprintf("Strength:     %d essential, %d strong, %d good\n",
		stats.StrengthDistribution.Essential, stats.StrengthDistribution.Strong, stats.StrengthDistribution.Good))

	writeCounts(&sb, "By category", stats.CategoryBreakdown)
	writeCounts(&sb, "Top skills", stats.TopSkills)
	writeCounts(&sb, "Top role types", stats.TopRoleTypes)

	p.printBox("CATALOG STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeCounts(sb *strings.Builder, heading string, counts []types.NameCount) {
	if len(counts) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", heading))
	for _, nc := range counts {
		sb.WriteString(fmt.Sprintf("  • %-40s %d\n", nc.Name, nc.Count))
	}
}

// clip truncates s to width runes, marking the cut with "..."
func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
