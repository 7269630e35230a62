package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/tubescribe/internal/config"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"github.com/sashabaranov/go-openai"
)

type openAISummarizer struct {
	client *openai.Client
	model  string
	prompt string
	logger logger.Logger
}

// NewOpenAI creates a Summarizer backed by the OpenAI chat completions API
func NewOpenAI(cfg config.OpenAIConfig, prompt string, log logger.Logger) Summarizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &openAISummarizer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		prompt: prompt,
		logger: log,
	}
}

// Summarize sends the transcript as user content under the fixed system instruction
// and returns the first choice.
func (s *openAISummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	s.logger.Info(ctx, "Summarizing with %s (%d chars)", s.model, len(transcript))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.prompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
