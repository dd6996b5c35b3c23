// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package achievements

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lumimood/moodcore/internal/crypto"
	"github.com/lumimood/moodcore/models"
)

func scoredEntry(created time.Time, score float64) models.JournalEntry {
	return models.JournalEntry{SentimentScore: &score, CreatedAt: created}
}

func TestMoodBucket(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{-1.0, "very_negative"},
		{-0.6, "very_negative"},
		{-0.59, "negative"},
		{-0.2, "negative"},
		{0.0, "neutral"},
		{0.2, "neutral"},
		{0.5, "positive"},
		{0.6, "positive"},
		{0.61, "very_positive"},
		{1.0, "very_positive"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, moodBucket(tt.score), "score %v", tt.score)
	}
}

func TestSentimentRuns(t *testing.T) {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("fewer than three scored entries", func(t *testing.T) {
		positive, improving := sentimentRuns([]models.JournalEntry{
			scoredEntry(base, 0.9),
			scoredEntry(base.AddDate(0, 0, -1), 0.8),
		})
		assert.Zero(t, positive)
		assert.Zero(t, improving)
	})

	t.Run("three positives in a row", func(t *testing.T) {
		positive, _ := sentimentRuns([]models.JournalEntry{
			scoredEntry(base, 0.4),
			scoredEntry(base.AddDate(0, 0, -1), 0.5),
			scoredEntry(base.AddDate(0, 0, -2), 0.31),
		})
		assert.Equal(t, positiveRunLength, positive)
	})

	t.Run("cutoff score breaks the positive run", func(t *testing.T) {
		positive, _ := sentimentRuns([]models.JournalEntry{
			scoredEntry(base, 0.4),
			scoredEntry(base.AddDate(0, 0, -1), 0.3),
			scoredEntry(base.AddDate(0, 0, -2), 0.9),
		})
		assert.Zero(t, positive)
	})

	t.Run("strictly rising mood improves", func(t *testing.T) {
		_, improving := sentimentRuns([]models.JournalEntry{
			scoredEntry(base.AddDate(0, 0, -2), -0.5),
			scoredEntry(base.AddDate(0, 0, -1), 0.0),
			scoredEntry(base, 0.4),
		})
		assert.Equal(t, positiveRunLength, improving)
	})

	t.Run("plateau does not improve", func(t *testing.T) {
		_, improving := sentimentRuns([]models.JournalEntry{
			scoredEntry(base.AddDate(0, 0, -2), -0.5),
			scoredEntry(base.AddDate(0, 0, -1), 0.4),
			scoredEntry(base, 0.4),
		})
		assert.Zero(t, improving)
	})

	t.Run("only the most recent three count", func(t *testing.T) {
		positive, _ := sentimentRuns([]models.JournalEntry{
			scoredEntry(base.AddDate(0, 0, -3), -0.9), // older, outside window
			scoredEntry(base.AddDate(0, 0, -2), 0.5),
			scoredEntry(base.AddDate(0, 0, -1), 0.6),
			scoredEntry(base, 0.7),
		})
		assert.Equal(t, positiveRunLength, positive)
	})

	t.Run("unscored entries are invisible", func(t *testing.T) {
		positive, _ := sentimentRuns([]models.JournalEntry{
			scoredEntry(base.AddDate(0, 0, -2), 0.5),
			{CreatedAt: base.AddDate(0, 0, -1)},
			scoredEntry(base.Add(-time.Hour), 0.6),
			scoredEntry(base, 0.7),
		})
		assert.Equal(t, positiveRunLength, positive)
	})
}

func TestNewEntryMetrics(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2024, 3, d, hour, 30, 0, 0, time.UTC)
	}
	stress := func(v int) *int { return &v }

	long := strings.Repeat("字", 600)
	entries := []models.JournalEntry{
		{Ciphertext: long, CreatedAt: day(11, 12)}, // Monday
		{Ciphertext: "short", Pinned: true, StressIndex: stress(2), CreatedAt: day(12, 3)},  // night
		{Ciphertext: "short", StressIndex: stress(9), CreatedAt: day(13, 6)},                // early
		{Ciphertext: crypto.DecryptFailedSentinel, CreatedAt: day(9, 10)},  // Saturday, corrupt
		{Ciphertext: "short", Metadata: models.Metadata{Tags: []string{"work", "sleep"}, Weather: "rain"}, CreatedAt: day(10, 10)}, // Sunday
	}

	m := newEntryMetrics(entries, nil, passthroughDecrypter{})

	assert.Equal(t, 5, m.noteCount)
	assert.Equal(t, 600, m.maxNoteLength)
	assert.Equal(t, 1, m.pinnedCount)
	assert.Equal(t, 1, m.lowStressCount)
	assert.Equal(t, 1, m.weatherCount)
	assert.Equal(t, 2, m.distinctTags)
	assert.Equal(t, 1, m.distinctMonths)
	assert.True(t, m.hasNightEntry)
	assert.True(t, m.hasEarlyEntry)
	assert.True(t, m.hasWeekendPair)
}

func TestNewEntryMetrics_WeekendInDifferentWeeks(t *testing.T) {
	// A Sunday and the Saturday of the following weekend share no ISO week.
	entries := []models.JournalEntry{
		{Ciphertext: "a", CreatedAt: time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)}, // Sunday, week 10
		{Ciphertext: "b", CreatedAt: time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)}, // Saturday, week 11
	}

	m := newEntryMetrics(entries, nil, passthroughDecrypter{})
	assert.False(t, m.hasWeekendPair)
}

func TestNewEntryMetrics_EmotionalRange(t *testing.T) {
	base := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

	both := newEntryMetrics([]models.JournalEntry{
		scoredEntry(base, 0.7),
		scoredEntry(base.Add(time.Hour), -0.7),
	}, nil, passthroughDecrypter{})
	assert.Equal(t, 2, both.emotionalRange)

	oneSided := newEntryMetrics([]models.JournalEntry{
		scoredEntry(base, 0.7),
		scoredEntry(base.Add(time.Hour), 0.9),
	}, nil, passthroughDecrypter{})
	assert.Equal(t, 1, oneSided.emotionalRange)

	// The extremes are strict: 0.6 itself is not extreme.
	boundary := newEntryMetrics([]models.JournalEntry{
		scoredEntry(base, 0.6),
		scoredEntry(base.Add(time.Hour), -0.6),
	}, nil, passthroughDecrypter{})
	assert.Zero(t, boundary.emotionalRange)
}
