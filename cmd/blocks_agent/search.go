package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/observability"
	"github.com/jonathan/achievement-blocks/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the block catalog",
	Long: "Filters the catalog by skills (any of), role type, category substring, keyword and minimum strength. " +
		"All given filters must match. Without filters every block is listed.",
	RunE: runSearch,
}

var (
	searchSkills   []string
	searchRole     string
	searchCategory string
	searchKeywords string
	searchStrength string
	searchGroup    bool
	searchJSON     bool
)

func init() {
	searchCmd.Flags().StringSliceVar(&searchSkills, "skill", nil, "Skill to match; repeat or comma separate for any-of")
	searchCmd.Flags().StringVar(&searchRole, "role", "", "Role type the block must target")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Case-insensitive category substring")
	searchCmd.Flags().StringVar(&searchKeywords, "keywords", "", "Text that must appear in the content or keywords")
	searchCmd.Flags().StringVar(&searchStrength, "strength", "", "Minimum strength: good, strong or essential")
	searchCmd.Flags().BoolVar(&searchGroup, "group", false, "Group the results by category")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print JSON instead of a report")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	filters := types.SearchFilters{
		Skills:        searchSkills,
		RoleType:      searchRole,
		Category:      searchCategory,
		Keywords:      searchKeywords,
		StrengthLevel: searchStrength,
	}
	if err := filters.Validate(); err != nil {
		return fmt.Errorf("invalid filters: %w", err)
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	blocks, err := c.Search(filters)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"blocks": blocks, "total": len(blocks)})
	}

	printer := observability.NewPrinter(out)
	if !searchGroup {
		printer.PrintBlocks(fmt.Sprintf("Search results (%d)", len(blocks)), blocks)
		return nil
	}

	for _, g := range catalog.New(blocks, c.Meta()).GroupByCategory() {
		printer.PrintBlocks(fmt.Sprintf("%s (%d)", g.Category, len(g.Blocks)), g.Blocks)
	}
	return nil
}
