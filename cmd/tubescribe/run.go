package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/tubescribe/internal/processor"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [URL]",
	Short: "Transcribe and summarize one video without a server",
	Example: `  tubescribe run "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  tubescribe run "https://youtu.be/tAP1eZYEuKA" -o transcript.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Ctrl+C cancels the running tool so the working files are still removed.
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		proc, err := newProcessor(ctx, cfg, log)
		if err != nil {
			return err
		}

		res, err := proc.Handle(ctx, processor.Request{
			URL: args[0],
			OnStage: func(stage processor.Stage) {
				log.Info(ctx, "Stage: %s", stage)
			},
		})
		if err != nil {
			return errors.New(processor.MessageOf(err))
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(res.Transcript), 0644); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Transcript:\n%s\n\n", res.Transcript)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Summary:\n%s\n", res.Summary)
		return nil
	},
}

func init() {
	runCmd.Flags().StringP("output", "o", "", "Write the transcript to a file instead of stdout")
	rootCmd.AddCommand(runCmd)
}
