// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package chat generates AI companion responses for the in-app
// mental-health chat. Session ownership and persistence live in the
// surrounding application; this package turns an ordered message history
// into the next assistant reply, with per-language canned fallbacks when
// the remote collaborator is unavailable.
package chat

import (
	"context"
	"strings"

	"github.com/lumimood/moodcore/internal/analysis"
	"github.com/lumimood/moodcore/internal/llm"
	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/models"
)

// historyWindow is the number of trailing history messages sent as context.
const historyWindow = 20

// Supported response languages.
const (
	LangEN = "en"
	LangZH = "zh-TW"
	LangJA = "ja"
)

// Companion produces chat replies. All state is read-only after
// construction.
type Companion struct {
	completer llm.Completer
	logger    *logger.Logger
}

// NewCompanion wires a companion. completer may be nil; every reply is then
// the canned fallback for the requested language.
func NewCompanion(completer llm.Completer, log *logger.Logger) *Companion {
	return &Companion{completer: completer, logger: log}
}

// Respond generates the next assistant reply for the given history. The
// last [historyWindow] messages are forwarded together with the
// per-language system prompt. Missing configuration or any remote failure
// yields the canned fallback for lang, never an error.
func (c *Companion) Respond(ctx context.Context, history []models.ChatMessage, lang string) string {
	lang = normalizeLang(lang)

	if c.completer == nil {
		c.logger.Warn().Msg("no LLM configured, returning chat fallback response")
		return fallbackResponses[lang]
	}

	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	messages := make([]llm.Message, 0, len(recent)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompts[lang]})
	for _, m := range recent {
		role := llm.RoleUser
		if m.Role == models.ChatRoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}

	reply, err := c.completer.Complete(ctx, llm.Request{
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.8,
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("chat response generation failed")
		return fallbackResponses[lang]
	}
	return reply
}

// AnalyzeMessage runs the deterministic local sentiment heuristic over a
// single chat message. No network call is made; suitable for per-message
// mood tracking on the hot path.
func AnalyzeMessage(text string) models.Score {
	return analysis.LocalScore(text)
}

// DetectLang maps an Accept-Language header value onto a supported
// response language, defaulting to English.
func DetectLang(acceptLanguage string) string {
	if acceptLanguage == "" {
		return LangEN
	}
	lang, _, _ := strings.Cut(acceptLanguage, ",")
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch {
	case strings.HasPrefix(lang, "zh"):
		return LangZH
	case strings.HasPrefix(lang, "ja"):
		return LangJA
	default:
		return LangEN
	}
}

func normalizeLang(lang string) string {
	switch lang {
	case LangZH, LangJA:
		return lang
	default:
		return LangEN
	}
}
