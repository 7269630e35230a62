package processor

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/tubescribe/internal/downloader"
	"github.com/nguyentantai21042004/tubescribe/internal/transcriber"
)

// Handle orchestrates download, transcription and summarization for one url.
// Stages run strictly in order, and the working files are removed before it returns.
func (p *implProcessor) Handle(ctx context.Context, req Request) (*Result, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, newError(KindInvalidInput, MsgMissingURL, nil)
	}

	startTime := time.Now()
	p.logger.Info(ctx, "Request received for URL: %s", url)

	ws, err := p.acquireWorkspace(ctx)
	if err != nil {
		return nil, p.fail(ctx, req, newError(KindInternal, MsgWorkspaceFailed, err))
	}
	defer p.releaseWorkspace(ctx, ws)

	// Step 1: Download audio
	p.notify(req, StageDownloading)
	if err := p.downloader.Download(ctx, downloader.Request{
		URL:          url,
		OutputPath:   ws.audioPath,
		ExtractAudio: true,
		AudioFormat:  p.audioFormat,
	}); err != nil {
		return nil, p.fail(ctx, req, newError(KindDownloadFailed, MsgDownloadFailed, err))
	}

	// Step 2: Transcribe
	p.notify(req, StageTranscribing)
	transcriptPath, err := p.transcriber.Transcribe(ctx, transcriber.Request{
		AudioPath: ws.audioPath,
		Model:     p.model,
		Language:  p.language,
	})
	if err != nil {
		return nil, p.fail(ctx, req, newError(KindTranscriptionFailed, MsgTranscriptionFailed, err))
	}
	if transcriptPath != "" && transcriptPath != ws.transcriptPath {
		defer p.cleanupTempFile(ctx, transcriptPath)
	} else {
		transcriptPath = ws.transcriptPath
	}

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return nil, p.fail(ctx, req, newError(KindTranscriptionFailed, MsgTranscriptMissing, err))
	}
	transcript := string(data)
	p.logger.Info(ctx, "Transcript length: %d", len(transcript))

	// Step 3: Summarize
	p.notify(req, StageSummarizing)
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return nil, p.fail(ctx, req, newError(KindSummarizationFailed, MsgSummarizationFailed, err))
	}

	p.notify(req, StageDone)
	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime))

	return &Result{
		Transcript: transcript,
		Summary:    summary,
	}, nil
}

func (p *implProcessor) fail(ctx context.Context, req Request, e *Error) *Error {
	p.logger.Error(ctx, "Transcription error: %v", e)
	p.notify(req, StageFailed)
	return e
}

func (p *implProcessor) notify(req Request, stage Stage) {
	if req.OnStage != nil {
		req.OnStage(stage)
	}
}
