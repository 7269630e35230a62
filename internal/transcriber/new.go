package transcriber

import (
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"github.com/nguyentantai21042004/tubescribe/pkg/executor"
)

type implTranscriber struct {
	binaryPath string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Transcriber that shells out to the whisper CLI
func New(binaryPath string, exec executor.Executor, log logger.Logger) Transcriber {
	if binaryPath == "" {
		binaryPath = "whisper"
	}
	return &implTranscriber{
		binaryPath: binaryPath,
		executor:   exec,
		logger:     log,
	}
}
