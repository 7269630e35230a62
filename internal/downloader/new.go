package downloader

import (
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"github.com/nguyentantai21042004/tubescribe/pkg/executor"
)

type implDownloader struct {
	binaryPath string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Downloader backed by the yt-dlp binary at binaryPath
func New(binaryPath string, exec executor.Executor, log logger.Logger) Downloader {
	if binaryPath == "" {
		binaryPath = "yt-dlp"
	}
	return &implDownloader{
		binaryPath: binaryPath,
		executor:   exec,
		logger:     log,
	}
}
