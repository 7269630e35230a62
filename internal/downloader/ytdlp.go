package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Download runs yt-dlp so that the final file lands exactly at req.OutputPath
func (d *implDownloader) Download(ctx context.Context, req Request) error {
	if strings.TrimSpace(req.URL) == "" {
		return fmt.Errorf("empty source url")
	}
	if req.OutputPath == "" {
		return fmt.Errorf("empty output path")
	}

	d.logger.Info(ctx, "Downloading audio: %s -> %s", req.URL, req.OutputPath)

	args := d.buildArgs(req)
	d.logger.Debug(ctx, "yt-dlp %s", strings.Join(args, " "))

	if _, err := d.executor.Execute(ctx, d.binaryPath, args...); err != nil {
		return fmt.Errorf("yt-dlp download: %w", err)
	}

	if _, err := os.Stat(req.OutputPath); err != nil {
		return fmt.Errorf("yt-dlp reported success but produced no file: %w", err)
	}

	d.logger.Info(ctx, "Audio downloaded: %s", req.OutputPath)
	return nil
}

// buildArgs constructs the yt-dlp arguments.
// -o uses %(ext)s so the post-processor writes <base>.<format> instead of renaming twice.
// "--" ends option parsing so a url can never be read as a flag.
func (d *implDownloader) buildArgs(req Request) []string {
	base := strings.TrimSuffix(req.OutputPath, filepath.Ext(req.OutputPath))

	args := []string{
		"--no-playlist",
		"--no-progress",
		"-o", base + ".%(ext)s",
	}

	if req.ExtractAudio {
		format := req.AudioFormat
		if format == "" {
			format = strings.TrimPrefix(filepath.Ext(req.OutputPath), ".")
		}
		args = append(args, "--extract-audio", "--audio-format", format)
	}

	return append(args, "--", req.URL)
}
