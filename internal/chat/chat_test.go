// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumimood/moodcore/internal/llm"
	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/models"
)

type fakeCompleter struct {
	reply    string
	err      error
	requests []llm.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

func TestDetectLang(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", LangEN},
		{"en-US,en;q=0.9", LangEN},
		{"zh-TW,zh;q=0.9", LangZH},
		{"zh", LangZH},
		{"ja-JP", LangJA},
		{"JA", LangJA},
		{"fr-FR,fr;q=0.8", LangEN},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLang(tt.header), "header %q", tt.header)
	}
}

func TestRespond_NilCompleterFallsBack(t *testing.T) {
	c := NewCompanion(nil, logger.Nop())

	for _, lang := range []string{LangEN, LangZH, LangJA} {
		reply := c.Respond(context.Background(), nil, lang)
		assert.Equal(t, fallbackResponses[lang], reply, "lang %s", lang)
	}

	// Unknown languages normalize to English.
	assert.Equal(t, fallbackResponses[LangEN], c.Respond(context.Background(), nil, "de"))
}

func TestRespond_CompleterFailureFallsBack(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream down")}
	c := NewCompanion(completer, logger.Nop())

	reply := c.Respond(context.Background(), []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "hello"},
	}, LangJA)

	assert.Equal(t, fallbackResponses[LangJA], reply)
}

func TestRespond_ForwardsHistoryWithSystemPrompt(t *testing.T) {
	completer := &fakeCompleter{reply: "I'm here with you."}
	c := NewCompanion(completer, logger.Nop())

	history := []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "rough day at work"},
		{Role: models.ChatRoleAssistant, Content: "what made it rough?"},
		{Role: models.ChatRoleUser, Content: "missed a deadline"},
	}

	reply := c.Respond(context.Background(), history, LangEN)

	assert.Equal(t, "I'm here with you.", reply)
	require.Len(t, completer.requests, 1)

	sent := completer.requests[0].Messages
	require.Len(t, sent, 4)
	assert.Equal(t, llm.RoleSystem, sent[0].Role)
	assert.Equal(t, systemPrompts[LangEN], sent[0].Content)
	assert.Equal(t, llm.RoleUser, sent[1].Role)
	assert.Equal(t, llm.RoleAssistant, sent[2].Role)
	assert.Equal(t, "missed a deadline", sent[3].Content)
}

func TestRespond_TrimsHistoryToWindow(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	c := NewCompanion(completer, logger.Nop())

	history := make([]models.ChatMessage, historyWindow+7)
	for i := range history {
		history[i] = models.ChatMessage{Role: models.ChatRoleUser, Content: fmt.Sprintf("message %d", i)}
	}

	c.Respond(context.Background(), history, LangEN)

	require.Len(t, completer.requests, 1)
	sent := completer.requests[0].Messages
	require.Len(t, sent, historyWindow+1)
	assert.Equal(t, "message 7", sent[1].Content)
	assert.Equal(t, fmt.Sprintf("message %d", len(history)-1), sent[len(sent)-1].Content)
}

func TestAnalyzeMessage(t *testing.T) {
	score := AnalyzeMessage("feeling anxious and stressed about the exam")
	assert.Negative(t, score.Sentiment)
	assert.Positive(t, score.Stress)

	neutral := AnalyzeMessage("the meeting is at three")
	assert.Zero(t, neutral.Sentiment)
}
