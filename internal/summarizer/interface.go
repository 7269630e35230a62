package summarizer

import "context"

// Summarizer turns a transcript into a short summary using an LLM.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
