package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/tubescribe/internal/transcriber"
)

// workspace is the pair of working files owned by one request.
// All of it lives in a private directory so partial downloads are removed too.
type workspace struct {
	dir            string
	audioPath      string
	transcriptPath string
}

// workingName returns audio_<unixmillis>_<random>.<ext>.
// The clock keeps names sortable, the random part keeps same-millisecond requests apart.
func (p *implProcessor) workingName() string {
	return fmt.Sprintf("audio_%d_%s.%s", p.now().UnixMilli(), p.newID(), p.audioFormat)
}

// acquireWorkspace creates the request directory and derives both working paths
func (p *implProcessor) acquireWorkspace(ctx context.Context) (*workspace, error) {
	if err := os.MkdirAll(p.workDir, 0755); err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}

	dir, err := os.MkdirTemp(p.workDir, "job-*")
	if err != nil {
		return nil, fmt.Errorf("create job dir: %w", err)
	}

	audioPath := filepath.Join(dir, p.workingName())
	ws := &workspace{
		dir:            dir,
		audioPath:      audioPath,
		transcriptPath: transcriber.TranscriptPath(audioPath),
	}

	p.logger.Debug(ctx, "Working audio path: %s", ws.audioPath)
	return ws, nil
}

// releaseWorkspace deletes the working files and their directory.
// Failures are logged as cleanup errors and never returned.
func (p *implProcessor) releaseWorkspace(ctx context.Context, ws *workspace) {
	for _, path := range []string{ws.audioPath, ws.transcriptPath} {
		p.cleanupTempFile(ctx, path)
	}

	if err := os.RemoveAll(ws.dir); err != nil {
		p.logger.Warn(ctx, "%v", newError(KindCleanupFailed, "remove job dir "+ws.dir, err))
		return
	}
	p.logger.Debug(ctx, "Cleaned up job dir: %s", ws.dir)
}

// cleanupTempFile removes a temporary file if it exists, logs warning if it fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	err := os.Remove(filePath)
	switch {
	case err == nil:
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	case errors.Is(err, fs.ErrNotExist):
	default:
		p.logger.Warn(ctx, "%v", newError(KindCleanupFailed, "remove "+filePath, err))
	}
}
