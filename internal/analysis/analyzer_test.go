// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumimood/moodcore/internal/llm"
	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/models"
)

// fakeCompleter scripts responses in call order.
type fakeCompleter struct {
	responses []string
	err       error
	calls     int
	requests  []llm.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.requests = append(f.requests, req)
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", llm.ErrEmptyCompletion
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

type fakeRetriever struct {
	docs []string
	err  error
}

func (f *fakeRetriever) Retrieve(context.Context, string) ([]string, error) {
	return f.docs, f.err
}

func TestAnalyze_NilCompleterUsesLocalTier(t *testing.T) {
	a := NewAnalyzer(nil, nil, logger.Nop())

	result := a.Analyze(context.Background(), "sad and lonely tonight")

	assert.Equal(t, models.TierLocal, result.Tier)
	require.NotNil(t, result.Sentiment)
	require.NotNil(t, result.Stress)
	assert.Equal(t, -1.0, *result.Sentiment)
	assert.Equal(t, CannedFeedback(-1.0), result.Feedback)
}

func TestAnalyze_RemoteTier(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		`{"sentiment_score": 0.7, "stress_index": 2}`,
		"That sounds like a genuinely good day.",
	}}
	a := NewAnalyzer(completer, nil, logger.Nop())

	result := a.Analyze(context.Background(), "had a lovely walk")

	assert.Equal(t, models.TierRemote, result.Tier)
	require.NotNil(t, result.Sentiment)
	assert.Equal(t, 0.7, *result.Sentiment)
	assert.Equal(t, 2, *result.Stress)
	assert.Equal(t, "That sounds like a genuinely good day.", result.Feedback)
	assert.Equal(t, 2, completer.calls)
}

func TestAnalyze_RemoteFailureFallsThroughToLocal(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream 500")}
	a := NewAnalyzer(completer, nil, logger.Nop())

	result := a.Analyze(context.Background(), "grateful and calm")

	assert.Equal(t, models.TierLocal, result.Tier)
	require.NotNil(t, result.Sentiment)
	assert.Equal(t, 1.0, *result.Sentiment)
}

func TestAnalyze_MalformedRemoteScoreFallsThrough(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"sorry, I cannot help with that"}}
	a := NewAnalyzer(completer, nil, logger.Nop())

	result := a.Analyze(context.Background(), "ordinary day")

	assert.Equal(t, models.TierLocal, result.Tier)
}

func TestAnalyze_ScoreClamped(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		`{"sentiment_score": 3.5, "stress_index": 42}`,
		"feedback",
	}}
	a := NewAnalyzer(completer, nil, logger.Nop())

	result := a.Analyze(context.Background(), "text")

	require.NotNil(t, result.Sentiment)
	assert.Equal(t, 1.0, *result.Sentiment)
	assert.Equal(t, 10, *result.Stress)
}

func TestAnalyzeWithImages(t *testing.T) {
	t.Run("nil completer falls back to text-only", func(t *testing.T) {
		a := NewAnalyzer(nil, nil, logger.Nop())
		result := a.AnalyzeWithImages(context.Background(), "tired", []string{"https://img/1.jpg"})
		assert.Equal(t, models.TierLocal, result.Tier)
	})

	t.Run("no images falls back to text-only", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{
			`{"sentiment_score": 0.2, "stress_index": 1}`, "fb",
		}}
		a := NewAnalyzer(completer, nil, logger.Nop())
		result := a.AnalyzeWithImages(context.Background(), "tired", nil)
		assert.Equal(t, models.TierRemote, result.Tier)
		// Regular text-only prompt, no image URLs attached.
		assert.Empty(t, completer.requests[0].Messages[0].ImageURLs)
	})

	t.Run("vision scoring and feedback", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{
			`{"sentiment_score": -0.1, "stress_index": 4}`,
			"The photos look peaceful.",
		}}
		a := NewAnalyzer(completer, nil, logger.Nop())

		urls := []string{"https://img/1.jpg", "https://img/2.jpg"}
		result := a.AnalyzeWithImages(context.Background(), "a day out", urls)

		assert.Equal(t, models.TierRemote, result.Tier)
		assert.Equal(t, -0.1, *result.Sentiment)
		assert.Equal(t, "The photos look peaceful.", result.Feedback)
		require.Len(t, completer.requests, 2)
		assert.Equal(t, urls, completer.requests[0].Messages[0].ImageURLs)
	})

	t.Run("image list capped", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{
			`{"sentiment_score": 0, "stress_index": 0}`, "fb",
		}}
		a := NewAnalyzer(completer, nil, logger.Nop())

		urls := []string{"a", "b", "c", "d", "e"}
		a.AnalyzeWithImages(context.Background(), "text", urls)

		require.NotEmpty(t, completer.requests)
		assert.Len(t, completer.requests[0].Messages[0].ImageURLs, maxAnalysisImages)
	})
}

func TestFeedbackGenerator_Generate(t *testing.T) {
	t.Run("nil completer answers canned", func(t *testing.T) {
		g := NewFeedbackGenerator(nil, nil, logger.Nop())
		assert.Equal(t, cannedVeryPositive, g.Generate(context.Background(), "text", 0.9))
		assert.Equal(t, cannedVeryLow, g.Generate(context.Background(), "text", -0.9))
	})

	t.Run("very negative score goes through retrieval", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{"grounded supportive reply"}}
		retriever := &fakeRetriever{docs: []string{"doc one", "doc two"}}
		g := NewFeedbackGenerator(completer, retriever, logger.Nop())

		reply := g.Generate(context.Background(), "everything fell apart", -0.8)

		assert.Equal(t, "grounded supportive reply", reply)
		require.Len(t, completer.requests, 1)
		assert.Contains(t, completer.requests[0].Messages[0].Content, "doc one\n---\ndoc two")
	})

	t.Run("retrieval failure degrades to personalized", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{"personal reply"}}
		retriever := &fakeRetriever{err: errors.New("kb down")}
		g := NewFeedbackGenerator(completer, retriever, logger.Nop())

		assert.Equal(t, "personal reply", g.Generate(context.Background(), "rough week", -0.8))
	})

	t.Run("mild score skips retrieval", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{"personal reply"}}
		retriever := &fakeRetriever{docs: []string{"should not be used"}}
		g := NewFeedbackGenerator(completer, retriever, logger.Nop())

		reply := g.Generate(context.Background(), "fine day", 0.1)

		assert.Equal(t, "personal reply", reply)
		assert.NotContains(t, completer.requests[0].Messages[0].Content, "should not be used")
	})

	t.Run("completion failure answers canned", func(t *testing.T) {
		completer := &fakeCompleter{err: errors.New("timeout")}
		g := NewFeedbackGenerator(completer, nil, logger.Nop())

		assert.Equal(t, CannedFeedback(-0.1), g.Generate(context.Background(), "meh", -0.1))
	})
}

func TestCannedFeedback_Buckets(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.9, cannedVeryPositive},
		{0.5, cannedVeryPositive},
		{0.3, cannedPositive},
		{0.1, cannedPositive},
		{0.0, cannedNeutral},
		{-0.3, cannedNeutral},
		{-0.5, cannedLow},
		{-0.6, cannedLow},
		{-0.61, cannedVeryLow},
		{-1.0, cannedVeryLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CannedFeedback(tt.score), "score %v", tt.score)
	}
}

func TestDecodeModelJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		want    rawScore
	}{
		{
			name: "plain json",
			raw:  `{"sentiment_score": -0.4, "stress_index": 6}`,
			want: rawScore{SentimentScore: -0.4, StressIndex: 6},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"sentiment_score\": 0.2, \"stress_index\": 1}\n```",
			want: rawScore{SentimentScore: 0.2, StressIndex: 1},
		},
		{
			name: "fence without language tag",
			raw:  "```\n{\"sentiment_score\": 0, \"stress_index\": 0}\n```",
			want: rawScore{},
		},
		{
			name:    "prose is an error",
			raw:     "I'd rate this about a seven",
			wantErr: true,
		},
		{
			name:    "empty response is an error",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parsed rawScore
			err := decodeModelJSON(tt.raw, &parsed)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed)
		})
	}
}
