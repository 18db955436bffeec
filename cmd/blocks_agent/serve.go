package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/db"
	"github.com/jonathan/achievement-blocks/internal/logger"
	"github.com/jonathan/achievement-blocks/internal/parsing"
	"github.com/jonathan/achievement-blocks/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may take after a stop signal
const shutdownTimeout = 30 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server exposing search, statistics, import and ranking endpoints over the block catalog. " +
		"The configured document, if any, is imported at startup. With a database URL, imports can be persisted, " +
		"and without a document the catalog starts from the stored blocks.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, then 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := settings.Port
	if servePort != 0 {
		port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := loaderOptions()
	if err != nil {
		return err
	}
	store := catalog.NewStore(nil)
	if settings.Document != "" {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		store.Swap(c)
	}

	cfg := server.Config{
		Port:      port,
		Store:     store,
		Loader:    catalog.NewLoader(opts),
		Logger:    log,
		TopN:      settings.TopN,
		MaxBlocks: settings.MaxBlocks,
	}
	if settings.DatabaseURL != "" {
		database, err := db.Connect(ctx, settings.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return err
		}
		cfg.Saver = database
		log.Info("persistence enabled")

		if settings.Document == "" {
			if err := seedFromDatabase(ctx, store, database); err != nil {
				return err
			}
		}
	}

	srv := server.New(cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", zap.Error(err))
		return err
	}
	return nil
}

// blockLister reads back persisted blocks. *db.DB satisfies it.
type blockLister interface {
	ListBlocks(ctx context.Context) ([]db.StoredBlock, error)
}

// seedFromDatabase installs the stored blocks as the serving catalog
func seedFromDatabase(ctx context.Context, store *catalog.Store, lister blockLister) error {
	stored, err := lister.ListBlocks(ctx)
	if err != nil {
		return err
	}
	store.Swap(catalog.New(db.Blocks(stored), parsing.DocumentMeta{}))
	log.Info("catalog seeded from database", zap.Int(logger.FieldBlocks, len(stored)))
	return nil
}
