package main

import (
	"context"
	"os"

	"github.com/nguyentantai21042004/tubescribe/internal/config"
	"github.com/nguyentantai21042004/tubescribe/internal/downloader"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"github.com/nguyentantai21042004/tubescribe/internal/processor"
	"github.com/nguyentantai21042004/tubescribe/internal/summarizer"
	"github.com/nguyentantai21042004/tubescribe/internal/transcriber"
	"github.com/nguyentantai21042004/tubescribe/pkg/executor"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "config.yaml"

var configFile string

var rootCmd = &cobra.Command{
	Use:          "tubescribe",
	Short:        "Transcribe and summarize videos",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: ./config.yaml if present, else environment only)")
}

// resolveConfigPath picks the flag value, then ./config.yaml, then nothing
func resolveConfigPath() string {
	if configFile != "" {
		return configFile
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, nil, err
	}
	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	return cfg, log, nil
}

// newProcessor builds the pipeline with the real command line tools and the configured summarizer
func newProcessor(ctx context.Context, cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	exec := executor.New()
	dl := downloader.New(cfg.Downloader.BinaryPath, exec, log)
	tr := transcriber.New(cfg.Whisper.BinaryPath, exec, log)

	sum, err := summarizer.New(ctx, cfg.Summarizer, log)
	if err != nil {
		return nil, err
	}

	return processor.New(cfg, dl, tr, sum, log), nil
}
