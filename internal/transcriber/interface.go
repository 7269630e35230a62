package transcriber

import "context"

// Request describes one speech-to-text run over a local audio file.
type Request struct {
	AudioPath string
	Model     string
	Language  string
}

// Transcriber converts an audio file into a plain-text transcript file and returns its path
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}
