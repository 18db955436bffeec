package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/config"
	"github.com/jonathan/achievement-blocks/internal/db"
	"github.com/jonathan/achievement-blocks/internal/observability"
	"github.com/jonathan/achievement-blocks/internal/parsing"
	"github.com/jonathan/achievement-blocks/internal/types"
)

// catalogSchema validates catalog exports
const catalogSchema = "block_catalog.schema.json"

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Parse the achievement document into a block catalog",
	Long: "Parses the achievement document, infers skills, keywords, strength and role/company types for every " +
		"achievement, and prints a summary or exports the catalog as JSON. With --save-db the blocks are stored " +
		"in PostgreSQL, skipping blocks whose title and category already exist.",
	RunE: runImport,
}

var (
	importOutput   string
	importJSONFile string
	importSaveDB   bool
)

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", outputConsole, "Output format: console or json")
	importCmd.Flags().StringVar(&importJSONFile, "json-file", "", "Also write the catalog JSON to this file")
	importCmd.Flags().BoolVar(&importSaveDB, "save-db", false, "Store the blocks in the database (requires DATABASE_URL)")

	rootCmd.AddCommand(importCmd)
}

// catalogExport is the JSON form of an imported catalog
type catalogExport struct {
	Source string               `json:"source,omitempty"`
	Meta   parsing.DocumentMeta `json:"meta"`
	Blocks []types.Block        `json:"blocks"`
	Report parsing.Report       `json:"report"`
}

func newCatalogExport(c *catalog.Catalog) catalogExport {
	return catalogExport{
		Source: c.Source(),
		Meta:   c.Meta(),
		Blocks: c.Blocks(),
		Report: c.Report(),
	}
}

func runImport(cmd *cobra.Command, _ []string) error {
	if err := checkOutputFormat(importOutput); err != nil {
		return err
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	export := newCatalogExport(c)
	if importJSONFile != "" {
		if err := writeJSONFile(importJSONFile, catalogSchema, export); err != nil {
			return err
		}
		log.Info("catalog exported", zap.String("path", importJSONFile))
	}

	var run *db.ImportRun
	if importSaveDB {
		run, err = saveCatalog(cmd.Context(), c)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if importOutput == outputJSON {
		return writeJSON(out, catalogSchema, export)
	}

	printer := observability.NewPrinter(out)
	printer.PrintImportSummary(c)
	if run != nil {
		_, _ = fmt.Fprintf(out, "Database: %d imported, %d already present (run %s)\n", run.Imported, run.Skipped, run.ID)
	}
	return nil
}

func saveCatalog(ctx context.Context, c *catalog.Catalog) (*db.ImportRun, error) {
	if settings.DatabaseURL == "" {
		return nil, fmt.Errorf("--save-db requires %s or 'database_url' in the config", config.EnvDatabaseURL)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, settings.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return nil, err
	}

	run, err := database.SaveCatalog(ctx, db.ImportInput{
		Source:  c.Source(),
		Owner:   c.Meta().Owner,
		Version: c.Meta().Version,
		Blocks:  c.Blocks(),
	})
	if err != nil {
		return nil, err
	}
	log.Info("catalog saved",
		zap.String("import_id", run.ID.String()),
		zap.Int("imported", run.Imported),
		zap.Int("skipped", run.Skipped),
	)
	return run, nil
}
