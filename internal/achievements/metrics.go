// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package achievements

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/lumimood/moodcore/internal/crypto"
	"github.com/lumimood/moodcore/internal/streak"
	"github.com/lumimood/moodcore/models"
)

// Metric thresholds that are part of the metric definitions themselves
// rather than catalog thresholds.
const (
	positiveRunLength    = 3   // entries in a positive/improving run
	positiveScoreCutoff  = 0.3 // "positive" for the positive-streak metric
	lowStressCutoff      = 3   // stress at or below counts as well-managed
	extremeScoreCutoff   = 0.6 // |score| above this marks the emotional range ends
	nightStartHour       = 0
	nightEndHour         = 5
	earlyStartHour       = 5
	earlyEndHour         = 7
)

// entryMetrics holds every entry-derived metric for one user, computed in a
// single pass over the history (plus one sort for the run-based metrics).
type entryMetrics struct {
	noteCount      int
	maxNoteLength  int
	longestStreak  int
	moodBuckets    int
	positiveStreak int
	moodImproving  int
	analyzedCount  int
	pinnedCount    int
	lowStressCount int
	weatherCount   int
	distinctTags   int
	distinctMonths int
	emotionalRange int
	hasNightEntry  bool
	hasEarlyEntry  bool
	hasWeekendPair bool
}

func newEntryMetrics(entries []models.JournalEntry, dates []time.Time, decrypter Decrypter) entryMetrics {
	m := entryMetrics{
		noteCount:     len(entries),
		longestStreak: streak.Longest(dates),
	}

	buckets := make(map[string]struct{}, 5)
	tags := make(map[string]struct{})
	months := make(map[string]struct{})
	weekendDays := make(map[string]map[int]struct{}) // ISO week -> weekdays seen
	var hasHigh, hasLow bool

	for _, e := range entries {
		if e.Pinned {
			m.pinnedCount++
		}
		if e.Feedback != "" {
			m.analyzedCount++
		}

		if plaintext := decrypter.Decrypt(e.Ciphertext); plaintext != crypto.DecryptFailedSentinel {
			if n := utf8.RuneCountInString(plaintext); n > m.maxNoteLength {
				m.maxNoteLength = n
			}
		}

		if e.SentimentScore != nil {
			s := *e.SentimentScore
			buckets[moodBucket(s)] = struct{}{}
			if s > extremeScoreCutoff {
				hasHigh = true
			}
			if s < -extremeScoreCutoff {
				hasLow = true
			}
		}
		if e.StressIndex != nil && *e.StressIndex <= lowStressCutoff {
			m.lowStressCount++
		}

		if e.Metadata.Weather != "" {
			m.weatherCount++
		}
		for _, t := range e.Metadata.Tags {
			tags[t] = struct{}{}
		}

		hour := e.CreatedAt.Hour()
		if hour >= nightStartHour && hour < nightEndHour {
			m.hasNightEntry = true
		}
		if hour >= earlyStartHour && hour < earlyEndHour {
			m.hasEarlyEntry = true
		}

		months[e.CreatedAt.Format("2006-01")] = struct{}{}

		isoYear, isoWeek := e.CreatedAt.ISOWeek()
		weekKey := fmt.Sprintf("%d-W%02d", isoYear, isoWeek)
		if weekendDays[weekKey] == nil {
			weekendDays[weekKey] = make(map[int]struct{}, 2)
		}
		switch e.CreatedAt.Weekday() {
		case time.Saturday:
			weekendDays[weekKey][6] = struct{}{}
		case time.Sunday:
			weekendDays[weekKey][7] = struct{}{}
		}
	}

	m.moodBuckets = len(buckets)
	m.distinctTags = len(tags)
	m.distinctMonths = len(months)
	m.emotionalRange = boolMetric(hasHigh) + boolMetric(hasLow)

	for _, days := range weekendDays {
		_, sat := days[6]
		_, sun := days[7]
		if sat && sun {
			m.hasWeekendPair = true
			break
		}
	}

	m.positiveStreak, m.moodImproving = sentimentRuns(entries)

	return m
}

// moodBucket maps a sentiment score onto one of five named valence buckets.
func moodBucket(s float64) string {
	switch {
	case s <= -0.6:
		return "very_negative"
	case s <= -0.2:
		return "negative"
	case s <= 0.2:
		return "neutral"
	case s <= 0.6:
		return "positive"
	default:
		return "very_positive"
	}
}

// sentimentRuns inspects the most recent scored entries and reports the
// positive-streak and mood-improving metrics: each is the run length when
// the condition holds over the last [positiveRunLength] scored entries,
// otherwise 0.
func sentimentRuns(entries []models.JournalEntry) (positive, improving int) {
	scored := make([]models.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if e.SentimentScore != nil {
			scored = append(scored, e)
		}
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].CreatedAt.After(scored[j].CreatedAt)
	})
	if len(scored) < positiveRunLength {
		return 0, 0
	}
	recent := scored[:positiveRunLength]

	allPositive := true
	for _, e := range recent {
		if *e.SentimentScore <= positiveScoreCutoff {
			allPositive = false
			break
		}
	}
	if allPositive {
		positive = positiveRunLength
	}

	// recent is newest-first, so strictly improving over time means each
	// entry scores strictly above the one after it in the slice.
	isImproving := true
	for i := 0; i < len(recent)-1; i++ {
		if *recent[i].SentimentScore <= *recent[i+1].SentimentScore {
			isImproving = false
			break
		}
	}
	if isImproving {
		improving = positiveRunLength
	}

	return positive, improving
}
