package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nguyentantai21042004/tubescribe/internal/client"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit [URL]",
	Short: "Send a video to a running server and show progress",
	Example: `  tubescribe submit "https://youtu.be/tAP1eZYEuKA"
  tubescribe submit "https://youtu.be/tAP1eZYEuKA" --server http://localhost:5000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL, _ := cmd.Flags().GetString("server")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		c := client.New(serverURL, nil)
		p := client.NewProgress(c, terminalRenderer(cmd.OutOrStdout()))

		ctx := cmd.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		view, err := p.Submit(ctx, args[0])
		if err != nil {
			// The view already shows the warning; detail goes to stderr for debugging.
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
		if view.Warning != "" {
			return fmt.Errorf("transcription did not complete")
		}
		return nil
	},
}

// terminalRenderer prints each step once and the texts as soon as they appear
func terminalRenderer(out io.Writer) client.RenderFunc {
	var prev client.View
	first := true
	return func(v client.View) {
		if first || v.Step != prev.Step {
			switch v.Step {
			case client.StepIdle:
			case client.StepDone:
				fmt.Fprintln(out, "[done]")
			default:
				fmt.Fprintf(out, "[%d/3] %s...\n", int(v.Step)+1, v.Step)
			}
		}
		if v.Transcript != prev.Transcript && v.Transcript != "" {
			fmt.Fprintf(out, "\nTranscript:\n%s\n\n", v.Transcript)
		}
		if v.Summary != prev.Summary && v.Summary != "" {
			fmt.Fprintf(out, "Summary:\n%s\n\n", v.Summary)
		}
		if v.Warning != "" && v.Warning != prev.Warning {
			fmt.Fprintf(out, "Warning: %s\n", v.Warning)
		}
		prev, first = v, false
	}
}

func init() {
	submitCmd.Flags().String("server", "http://localhost:5000", "Server base URL")
	submitCmd.Flags().Duration("timeout", 30*time.Minute, "Give up after this long (0 waits forever)")
	rootCmd.AddCommand(submitCmd)
}
