package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/tubescribe/internal/config"
	"github.com/nguyentantai21042004/tubescribe/internal/export"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"github.com/nguyentantai21042004/tubescribe/internal/server"
	"github.com/nguyentantai21042004/tubescribe/internal/watcher"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Example: `  tubescribe serve
  tubescribe serve --config ./config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		log.Info(ctx, "========================================")
		log.Info(ctx, "tubescribe")
		log.Info(ctx, "========================================")
		log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
		log.Info(ctx, "Summarizer: %s (API key loaded: %t)", cfg.Summarizer.Provider, cfg.APIKey() != "")
		log.Info(ctx, "Work directory: %s", cfg.Paths.Work)

		if err := os.MkdirAll(cfg.Paths.Work, 0755); err != nil {
			log.Error(ctx, "Failed to create work directory: %v", err)
			return err
		}

		proc, err := newProcessor(ctx, cfg, log)
		if err != nil {
			log.Error(ctx, "Failed to initialize summarizer: %v", err)
			return err
		}
		srv := server.New(cfg.Server, proc, export.New(cfg.Paths.Work, log), log)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.Start(gctx)
		})

		if path := resolveConfigPath(); path != "" {
			w, err := watcher.New(path, reloadLogging(log), log)
			if err != nil {
				log.Warn(ctx, "Config hot reload disabled: %v", err)
			} else {
				defer w.Stop()
				g.Go(func() error {
					if err := w.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
						return err
					}
					return nil
				})
			}
		}

		log.Info(ctx, "Press Ctrl+C to stop")
		if err := g.Wait(); err != nil {
			log.Error(context.Background(), "Stopped with error: %v", err)
			return err
		}

		log.Info(context.Background(), "tubescribe stopped")
		return nil
	},
}

// reloadLogging applies the log level of a changed config file. Other settings need a restart.
func reloadLogging(log logger.Logger) watcher.EventHandler {
	return func(ctx context.Context, path string) error {
		lc, err := config.LoadLogging(path)
		if err != nil {
			return err
		}
		log.SetLevel(lc.Level)
		log.Info(ctx, "Config changed, log level is now %s. Restart to apply other settings.", lc.Level)
		return nil
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
