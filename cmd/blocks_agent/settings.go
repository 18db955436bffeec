package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/config"
	"github.com/jonathan/achievement-blocks/internal/inference"
	"github.com/jonathan/achievement-blocks/internal/logger"
)

var (
	configPath       string
	documentFlag     string
	vocabularyFlag   string
	stopSectionsFlag []string
	logJSONFlag      bool
	debugFlag        bool
)

// settings is the resolved configuration: defaults < config file < environment < flags
var settings config.Config

var log *zap.Logger

func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg := config.Defaults()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("document") {
		cfg.Document = documentFlag
	}
	if flags.Changed("vocabulary") {
		cfg.Vocabulary = vocabularyFlag
	}
	if flags.Changed("stop-section") {
		cfg.StopSections = stopSectionsFlag
	}
	cfg.LogJSON = cfg.LogJSON || logJSONFlag
	cfg.Debug = cfg.Debug || debugFlag

	if err := cfg.Validate(); err != nil {
		return err
	}
	settings = cfg

	l, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	log = l
	return nil
}

// loaderOptions builds catalog options from the resolved settings
func loaderOptions() (catalog.Options, error) {
	opts := catalog.DefaultOptions()
	if settings.StopSections != nil {
		opts.Parser.StopSections = settings.StopSections
	}
	if settings.Vocabulary != "" {
		vocab, err := inference.LoadVocabulary(settings.Vocabulary)
		if err != nil {
			return opts, err
		}
		opts.Vocabulary = vocab
		log.Debug("vocabulary override loaded", zap.String("path", settings.Vocabulary))
	}
	return opts, nil
}

// maxLoggedTitle bounds titles echoed into log lines
const maxLoggedTitle = 80

// loadCatalog imports the configured achievement document
func loadCatalog() (*catalog.Catalog, error) {
	if settings.Document == "" {
		return nil, fmt.Errorf("no achievement document: pass --document, set %s or configure 'document'", config.EnvDocument)
	}

	opts, err := loaderOptions()
	if err != nil {
		return nil, err
	}

	c, err := catalog.NewLoader(opts).LoadFile(settings.Document)
	if err != nil {
		return nil, err
	}

	report := c.Report()
	docLog := logger.WithFields(log, zap.String(logger.FieldDocument, settings.Document))
	docLog.Info("catalog loaded",
		zap.Int(logger.FieldBlocks, c.Len()),
		zap.Int(logger.FieldSkipped, len(report.Skipped)),
	)
	for _, s := range report.Skipped {
		docLog.Warn("achievement skipped",
			zap.String(logger.FieldCategory, s.Category),
			zap.String(logger.FieldTitle, logger.Truncate(s.Title, maxLoggedTitle)),
			zap.Int("line", s.Line),
			zap.String("reason", s.Reason),
		)
	}
	return c, nil
}
