package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/achievement-blocks/internal/observability"
)

// statsSchema validates statistics exports
const statsSchema = "catalog_stats.schema.json"

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the block catalog",
	Long:  "Prints block counts per category and strength tier, and the most frequent skills and role types.",
	RunE:  runStats,
}

var (
	statsTopN int
	statsJSON bool
)

func init() {
	statsCmd.Flags().IntVar(&statsTopN, "top-n", 0, "Entries in the top skill and role lists (default from config)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print JSON instead of a report")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	topN := statsTopN
	if topN <= 0 {
		topN = settings.TopN
	}
	stats := c.Stats(topN)

	out := cmd.OutOrStdout()
	if statsJSON {
		return writeJSON(out, statsSchema, stats)
	}
	observability.NewPrinter(out).PrintStats(stats)
	return nil
}
