// Package ai wraps the OpenAI chat completion API for workout drafting and
// daily scripture encouragement.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrNotConfigured is returned when no API key is set. Callers fall back to
// their built-in alternatives.
var ErrNotConfigured = errors.New("openai api key not configured")

// DefaultModel is used when no model is configured.
const DefaultModel = openai.ChatModelGPT4o

// Config carries the API credentials and generation settings.
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
}

// Client is a thin chat completion wrapper. All prompts go through a single
// system+user message exchange; no conversation history is kept.
type Client struct {
	api         openai.Client
	model       openai.ChatModel
	temperature float64
	configured  bool
	logger      *slog.Logger

	// complete is swapped out in tests.
	complete func(ctx context.Context, system, prompt string) (string, error)
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	model := openai.ChatModel(cfg.Model)
	if cfg.Model == "" {
		model = DefaultModel
	}
	c := &Client{
		api:         openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       model,
		temperature: cfg.Temperature,
		configured:  cfg.APIKey != "",
		logger:      logger,
	}
	c.complete = c.chatCompletion
	return c
}

// DraftWorkout sends the coaching prompt and returns the raw completion text
// for the workout parser.
func (c *Client) DraftWorkout(ctx context.Context, system, prompt string) (string, error) {
	return c.complete(ctx, system, prompt)
}

func (c *Client) chatCompletion(ctx context.Context, system, prompt string) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "sending chat completion request",
		slog.String("model", string(c.model)),
		slog.Int("promptLength", len(prompt)))

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices returned")
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "received chat completion response",
		slog.Int64("completionTokens", completion.Usage.CompletionTokens),
		slog.Int64("promptTokens", completion.Usage.PromptTokens))

	return completion.Choices[0].Message.Content, nil
}
