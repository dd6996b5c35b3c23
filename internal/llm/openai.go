// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package llm

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/lumimood/moodcore/internal/config"
	"github.com/lumimood/moodcore/internal/logger"
)

const defaultRequestTimeout = 15 * time.Second

// openAICompleter is the OpenAI chat-completions implementation of
// [Completer]. All state is read-only after construction.
type openAICompleter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *logger.Logger
}

// NewCompleter builds a [Completer] from the analysis configuration.
// Returns nil when no API key is configured: the remote tier is simply
// unavailable, and callers fall through to their local strategies.
func NewCompleter(cfg config.Analysis, log *logger.Logger) Completer {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		log.Info().Msg("no LLM API key configured, remote tier unavailable")
		return nil
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.OpenAIAPIKey)}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	client := openai.NewClient(opts...)

	model := cfg.OpenAIModel
	if model == "" {
		model = config.DefaultOpenAIModel
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &openAICompleter{
		client:  &client,
		model:   model,
		timeout: timeout,
		logger:  log,
	}
}

// Complete implements [Completer]. The call is bounded by the configured
// timeout on top of whatever deadline ctx already carries.
func (c *openAICompleter) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: buildMessages(req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	params.Temperature = openai.Float(req.Temperature)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// buildMessages converts boundary messages into openai-go message params.
// A user message with image URLs becomes a multimodal content-part list
// with low-detail images.
func buildMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			if len(m.ImageURLs) == 0 {
				out = append(out, openai.UserMessage(m.Content))
				continue
			}
			parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(m.ImageURLs)+1)
			parts = append(parts, openai.TextContentPart(m.Content))
			for _, url := range m.ImageURLs {
				parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL:    url,
					Detail: "low",
				}))
			}
			out = append(out, openai.UserMessage(parts))
		}
	}
	return out
}
