// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package analysis derives a sentiment score and stress index from journal
// text through an ordered fallback ladder (remote LLM, then a local keyword
// heuristic, then graceful degradation) and generates tier-appropriate
// supportive feedback.
//
// The package-level contract is that analysis can never fail: [Analyzer.Analyze]
// always returns a usable result, and a caller persisting a journal entry
// must never be blocked by anything that happens here.
package analysis

import (
	"context"

	"github.com/lumimood/moodcore/internal/llm"
	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/models"
)

// maxAnalysisImages bounds the number of image references forwarded to the
// vision variant.
const maxAnalysisImages = 3

// Analyzer walks the tier ladder for each text and attaches
// tier-appropriate feedback to the result. All state is read-only after
// construction; the analyzer is safe for concurrent use.
type Analyzer struct {
	tiers     []scoreTier
	feedback  *FeedbackGenerator
	completer llm.Completer
	logger    *logger.Logger
}

// NewAnalyzer wires the ladder. completer may be nil (remote tier
// unavailable, analysis runs fully local); retriever may be nil (feedback
// degrades to the personalized path).
func NewAnalyzer(completer llm.Completer, retriever Retriever, log *logger.Logger) *Analyzer {
	return &Analyzer{
		tiers: []scoreTier{
			&remoteTier{completer: completer},
			localTier{},
		},
		feedback:  NewFeedbackGenerator(completer, retriever, log),
		completer: completer,
		logger:    log,
	}
}

// Feedback exposes the generator for re-analysis flows that need feedback
// without re-scoring.
func (a *Analyzer) Feedback() *FeedbackGenerator {
	return a.feedback
}

// Analyze scores text and generates feedback. It never returns an error:
// remote failures fall through to the local tier, and if every tier fails
// the result carries nil score/stress and a static message so the entry
// write can still complete.
func (a *Analyzer) Analyze(ctx context.Context, text string) models.AnalysisResult {
	log := logger.FromContext(ctx)

	result := models.AnalysisResult{Tier: models.TierDegraded, Feedback: degradedFeedback}

	for _, tier := range a.tiers {
		score, err := tier.attempt(ctx, text)
		if err != nil {
			log.Warn().Err(err).Str("tier", string(tier.name())).Msg("analysis tier failed, falling through")
			continue
		}

		result.SetScore(score)
		result.Tier = tier.name()

		switch tier.name() {
		case models.TierRemote:
			result.Feedback = a.feedback.Generate(ctx, text, score.Sentiment)
		default:
			result.Feedback = CannedFeedback(score.Sentiment)
			log.Info().
				Float64("sentiment", score.Sentiment).
				Int("stress", score.Stress).
				Msg("local analysis")
		}
		return result
	}

	// Unreachable while the local tier exists; kept so the ladder stays
	// safe if tiers are ever reordered.
	log.Error().Msg("all analysis tiers failed")
	return result
}

// AnalyzeWithImages re-analyzes text together with up to three attached
// image references using the remote vision tier. Any failure (no remote
// collaborator, transport error, malformed response) falls back to the
// text-only pipeline unchanged.
func (a *Analyzer) AnalyzeWithImages(ctx context.Context, text string, imageURLs []string) models.AnalysisResult {
	log := logger.FromContext(ctx)

	if a.completer == nil || len(imageURLs) == 0 {
		return a.Analyze(ctx, text)
	}
	if len(imageURLs) > maxAnalysisImages {
		imageURLs = imageURLs[:maxAnalysisImages]
	}

	scorePrompt := scoreWithImagesInstruction + "\n\nJournal text: " + truncateRunes(text, scorePromptTextLimit)
	raw, err := a.completer.Complete(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: scorePrompt, ImageURLs: imageURLs}},
		MaxTokens:   100,
		Temperature: 0.3,
	})
	if err != nil {
		log.Warn().Err(err).Msg("vision analysis failed, falling back to text-only")
		return a.Analyze(ctx, text)
	}

	score, err := decodeScore(raw)
	if err != nil {
		log.Warn().Err(err).Msg("vision analysis returned malformed score, falling back to text-only")
		return a.Analyze(ctx, text)
	}

	result := models.AnalysisResult{Tier: models.TierRemote}
	result.SetScore(score)

	feedbackPrompt := imageFeedbackInstruction + "\n\nJournal text:\n\"" + truncateRunes(text, feedbackPromptTextLimit) + "\""
	feedback, err := a.completer.Complete(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: feedbackPrompt, ImageURLs: imageURLs}},
		MaxTokens:   300,
		Temperature: 0.8,
	})
	if err != nil {
		log.Warn().Err(err).Msg("vision feedback failed, falling back to text-only")
		return a.Analyze(ctx, text)
	}
	result.Feedback = feedback

	return result
}
