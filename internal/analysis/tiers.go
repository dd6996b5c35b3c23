// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lumimood/moodcore/internal/llm"
	"github.com/lumimood/moodcore/models"
)

// ErrTierUnavailable is reported by a tier that cannot run at all (e.g. the
// remote tier without an API key). The ladder treats it like any other tier
// failure and falls through.
var ErrTierUnavailable = errors.New("analysis tier unavailable")

// scoreTier is one strategy in the ordered fallback ladder. attempt either
// produces a complete sentiment/stress pair or an error; partial results do
// not exist, which is what keeps the score/stress both-or-neither invariant
// trivial to uphold.
type scoreTier interface {
	name() models.AnalysisTier
	attempt(ctx context.Context, text string) (models.Score, error)
}

// remoteTier scores text via the remote LLM collaborator with a strict-JSON
// instruction.
type remoteTier struct {
	completer llm.Completer
}

func (t *remoteTier) name() models.AnalysisTier { return models.TierRemote }

func (t *remoteTier) attempt(ctx context.Context, text string) (models.Score, error) {
	if t.completer == nil {
		return models.Score{}, ErrTierUnavailable
	}

	prompt := scoreInstruction + "\n\nJournal text: " + truncateRunes(text, scorePromptTextLimit)
	raw, err := t.completer.Complete(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   100,
		Temperature: 0.3,
	})
	if err != nil {
		return models.Score{}, err
	}

	return decodeScore(raw)
}

// localTier is the deterministic keyword heuristic. It performs no I/O and
// cannot be unavailable.
type localTier struct{}

func (localTier) name() models.AnalysisTier { return models.TierLocal }

func (localTier) attempt(_ context.Context, text string) (models.Score, error) {
	return scoreLocally(segmentText(text)), nil
}

// rawScore mirrors the JSON shape the model is instructed to return.
type rawScore struct {
	SentimentScore float64 `json:"sentiment_score"`
	StressIndex    int     `json:"stress_index"`
}

// decodeScore parses a model response into a clamped [models.Score].
func decodeScore(raw string) (models.Score, error) {
	var parsed rawScore
	if err := decodeModelJSON(raw, &parsed); err != nil {
		return models.Score{}, fmt.Errorf("parse sentiment response: %w", err)
	}
	return models.Score{
		Sentiment: clampSentiment(parsed.SentimentScore),
		Stress:    clampStress(parsed.StressIndex),
	}, nil
}

// decodeModelJSON unmarshals JSON from a model response, tolerating the
// common failure mode where the model wraps the payload in a ``` fence
// despite being told not to.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if strings.HasPrefix(s, "```") {
		if _, rest, ok := strings.Cut(s, "\n"); ok {
			s = rest
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	if s == "" {
		return errors.New("empty model response")
	}
	return json.Unmarshal([]byte(s), v)
}

// truncateRunes bounds text to at most limit runes, respecting UTF-8
// boundaries.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
