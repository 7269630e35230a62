package processor

import "context"

// Processor runs one video link through download, transcription and summarization
type Processor interface {
	Handle(ctx context.Context, req Request) (*Result, error)
}

// Stage names a step of the pipeline as reported to a StageFunc.
type Stage string

const (
	StageDownloading  Stage = "downloading"
	StageTranscribing Stage = "transcribing"
	StageSummarizing  Stage = "summarizing"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)

// StageFunc is called synchronously when a stage starts
type StageFunc func(stage Stage)

// Request is one transcription job
type Request struct {
	URL string

	// OnStage is optional
	OnStage StageFunc
}

// Result is returned only when every stage succeeded
type Result struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}
