// Package main provides the blocks_agent CLI for importing, searching and ranking achievement blocks.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blocks_agent",
	Short: "Achievement block catalog and ranking engine",
	Long: "blocks_agent turns a markdown achievement document into a catalog of tagged blocks, " +
		"answers search and statistics queries over it, and ranks blocks against job targets.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a JSON config file")
	flags.StringVarP(&documentFlag, "document", "d", "", "Path to the achievement markdown document")
	flags.StringVar(&vocabularyFlag, "vocabulary", "", "Path to a vocabulary override JSON file")
	flags.StringSliceVar(&stopSectionsFlag, "stop-section", nil, "Category prefix that ends the achievement section (repeatable)")
	flags.BoolVar(&logJSONFlag, "log-json", false, "Emit JSON logs")
	flags.BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
