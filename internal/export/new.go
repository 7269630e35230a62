package export

import (
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
)

type implExporter struct {
	workDir string
	logger  logger.Logger
}

// New creates an Exporter that stages files in workDir
func New(workDir string, log logger.Logger) Exporter {
	return &implExporter{
		workDir: workDir,
		logger:  log,
	}
}
