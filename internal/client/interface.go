package client

import "context"

// Transcriber submits one video link to a running server
type Transcriber interface {
	Transcribe(ctx context.Context, url string) (*Result, error)
}

type Result struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}

// Step is the progress indicator position. Idle means nothing is running.
type Step int

const (
	StepIdle Step = iota - 1
	StepDownloading
	StepTranscribing
	StepSummarizing
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepDownloading:
		return "Downloading"
	case StepTranscribing:
		return "Transcribing"
	case StepSummarizing:
		return "Summarizing"
	case StepDone:
		return "Done"
	default:
		return "Idle"
	}
}

// View is everything a frontend needs to draw the current state
type View struct {
	Step       Step
	Loading    bool
	Transcript string
	Summary    string
	Warning    string
}

// RenderFunc receives every state change in order
type RenderFunc func(View)
