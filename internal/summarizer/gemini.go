package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/tubescribe/internal/config"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"google.golang.org/genai"
)

type geminiSummarizer struct {
	client *genai.Client
	model  string
	prompt string
	logger logger.Logger
}

// NewGemini creates a Summarizer backed by the Gemini API
func NewGemini(ctx context.Context, cfg config.GeminiConfig, prompt string, log logger.Logger) (Summarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiSummarizer{
		client: client,
		model:  cfg.Model,
		prompt: prompt,
		logger: log,
	}, nil
}

func (s *geminiSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	s.logger.Info(ctx, "Summarizing with %s (%d chars)", s.model, len(transcript))

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(transcript), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(s.prompt, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return candidateText(result)
}

// candidateText joins the text parts of the first candidate
func candidateText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
