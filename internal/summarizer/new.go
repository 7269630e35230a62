package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/tubescribe/internal/config"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
)

// ErrEmptyResponse is returned when the provider answers without any completion text.
var ErrEmptyResponse = errors.New("summarizer: empty response")

// New builds the Summarizer selected by cfg.Provider
func New(ctx context.Context, cfg config.SummarizerConfig, log logger.Logger) (Summarizer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAI(cfg.OpenAI, cfg.Prompt, log), nil
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.Gemini, cfg.Prompt, log)
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}
