package processor

import (
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/tubescribe/internal/config"
	"github.com/nguyentantai21042004/tubescribe/internal/downloader"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"github.com/nguyentantai21042004/tubescribe/internal/summarizer"
	"github.com/nguyentantai21042004/tubescribe/internal/transcriber"
)

type implProcessor struct {
	workDir     string
	audioFormat string
	model       string
	language    string

	downloader  downloader.Downloader
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger

	now   func() time.Time
	newID func() string
}

// New creates a new Processor instance
func New(cfg *config.Config, dl downloader.Downloader, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		workDir:     cfg.Paths.Work,
		audioFormat: cfg.Downloader.AudioFormat,
		model:       cfg.Whisper.Model,
		language:    cfg.Whisper.Language,
		downloader:  dl,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}
