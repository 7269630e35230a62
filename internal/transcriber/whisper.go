package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Transcribe runs whisper against req.AudioPath.
// The transcript is written next to the audio file with a .txt extension.
func (t *implTranscriber) Transcribe(ctx context.Context, req Request) (string, error) {
	if req.AudioPath == "" {
		return "", fmt.Errorf("empty audio path")
	}

	audioPath, err := filepath.Abs(req.AudioPath)
	if err != nil {
		return "", fmt.Errorf("resolve audio path: %w", err)
	}
	req.AudioPath = audioPath

	t.logger.Info(ctx, "Starting transcription (model=%s, language=%s): %s", req.Model, req.Language, req.AudioPath)

	// Run inside the job directory so anything else whisper writes is removed with it.
	args := t.buildArgs(req)
	if _, err := t.executor.ExecuteInDir(ctx, filepath.Dir(req.AudioPath), t.binaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	transcriptPath := TranscriptPath(req.AudioPath)
	t.logger.Info(ctx, "Transcription completed: %s", transcriptPath)
	return transcriptPath, nil
}

// buildArgs constructs the whisper CLI arguments
// --output_dir pins the transcript beside the audio regardless of the working directory
func (t *implTranscriber) buildArgs(req Request) []string {
	args := []string{
		req.AudioPath,
		"--output_format", "txt",
		"--output_dir", filepath.Dir(req.AudioPath),
	}
	if req.Model != "" {
		args = append(args, "--model", req.Model)
	}
	if req.Language != "" {
		args = append(args, "--language", req.Language)
	}
	return args
}

// TranscriptPath returns the transcript file whisper writes for audioPath
func TranscriptPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".txt"
}
