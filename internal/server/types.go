package server

import "github.com/nguyentantai21042004/tubescribe/internal/processor"

type (
	StatusResponse struct {
		Status string `json:"status"`
	}

	TranscribeRequest struct {
		URL string `json:"url"`
	}

	TranscribeResponse struct {
		Transcript string `json:"transcript"`
		Summary    string `json:"summary"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}

	// StageEvent is a progress or failure message of the streaming endpoint.
	StageEvent struct {
		Stage processor.Stage `json:"stage"`
		Error string          `json:"error,omitempty"`
	}

	// DoneEvent is the final message of a successful stream; both texts are always present.
	DoneEvent struct {
		Stage      processor.Stage `json:"stage"`
		Transcript string          `json:"transcript"`
		Summary    string          `json:"summary"`
	}
)

const statusRunning = "🟢 Server is running"
