// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumimood/moodcore/internal/llm"
	"github.com/lumimood/moodcore/internal/logger"
)

// ragThreshold is the sentiment score below which feedback is generated
// against the psychology knowledge base instead of the lighter
// personalized prompt.
const ragThreshold = -0.4

// Retriever is the optional knowledge-base collaborator: a query returns
// the contents of the top matching documents. An implementation signals
// absence (unconfigured, empty index, unreachable) by returning no
// documents; the generator degrades to the personalized path.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]string, error)
}

// FeedbackGenerator produces human-readable supportive feedback conditioned
// on the sentiment score. It mirrors the analysis ladder: knowledge-base
// retrieval for very negative entries, a personalized LLM prompt otherwise,
// and fixed canned templates when no remote collaborator is usable.
type FeedbackGenerator struct {
	completer llm.Completer
	retriever Retriever
	logger    *logger.Logger
}

// NewFeedbackGenerator wires a generator. completer and retriever may both
// be nil; the generator then always answers from the canned templates.
func NewFeedbackGenerator(completer llm.Completer, retriever Retriever, log *logger.Logger) *FeedbackGenerator {
	return &FeedbackGenerator{
		completer: completer,
		retriever: retriever,
		logger:    log,
	}
}

// Generate returns feedback text for the given journal text and sentiment
// score. It never returns an error: every failure degrades one rung down
// and the bottom rung (canned templates) cannot fail. Callable
// independently of analysis for re-analysis flows.
func (g *FeedbackGenerator) Generate(ctx context.Context, text string, score float64) string {
	if g.completer == nil {
		return CannedFeedback(score)
	}

	if score < ragThreshold {
		return g.ragFeedback(ctx, text, score)
	}
	return g.personalizedFeedback(ctx, text, score)
}

// ragFeedback grounds feedback in retrieved psychology documents. Absence
// of the knowledge base or any retrieval/completion failure falls back to
// the personalized path.
func (g *FeedbackGenerator) ragFeedback(ctx context.Context, text string, score float64) string {
	if g.retriever == nil {
		return g.personalizedFeedback(ctx, text, score)
	}

	docs, err := g.retriever.Retrieve(ctx, truncateRunes(text, ragPromptTextLimit))
	if err != nil || len(docs) == 0 {
		if err != nil {
			g.logger.Warn().Err(err).Msg("knowledge base retrieval failed")
		}
		return g.personalizedFeedback(ctx, text, score)
	}

	prompt := fmt.Sprintf(ragQueryInstruction,
		score,
		truncateRunes(text, ragPromptTextLimit),
		strings.Join(docs, "\n---\n"),
	)

	reply, err := g.completer.Complete(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		g.logger.Warn().Err(err).Msg("knowledge-base feedback failed")
		return g.personalizedFeedback(ctx, text, score)
	}
	return reply
}

// personalizedFeedback asks the model to respond to the entry's actual
// content, with a tone hint chosen by sentiment band. Failure falls back to
// the canned templates.
func (g *FeedbackGenerator) personalizedFeedback(ctx context.Context, text string, score float64) string {
	prompt := fmt.Sprintf(personalizedFeedbackInstruction, toneHint(score)) +
		"\n\nJournal text:\n\"" + truncateRunes(text, feedbackPromptTextLimit) + "\""

	reply, err := g.completer.Complete(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   300,
		Temperature: 0.8,
	})
	if err != nil {
		g.logger.Warn().Err(err).Msg("personalized feedback failed")
		return CannedFeedback(score)
	}
	return reply
}

func toneHint(score float64) string {
	switch {
	case score >= 0.3:
		return toneHintPositive
	case score >= -0.2:
		return toneHintNeutral
	case score >= -0.5:
		return toneHintLow
	default:
		return toneHintVeryLow
	}
}

// CannedFeedback returns the fixed supportive template for a sentiment
// score. Five buckets; the lowest includes a crisis hotline reference.
func CannedFeedback(score float64) string {
	switch {
	case score >= 0.5:
		return cannedVeryPositive
	case score >= 0.1:
		return cannedPositive
	case score >= -0.3:
		return cannedNeutral
	case score >= -0.6:
		return cannedLow
	default:
		return cannedVeryLow
	}
}
