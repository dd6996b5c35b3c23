// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumimood/moodcore/models"
)

func entryAt(created time.Time, score float64, stress int) models.JournalEntry {
	return models.JournalEntry{
		SentimentScore: &score,
		StressIndex:    &stress,
		CreatedAt:      created,
	}
}

func unscoredAt(created time.Time) models.JournalEntry {
	return models.JournalEntry{CreatedAt: created}
}

func findAlert(t *testing.T, alerts []models.Alert, typ string) models.Alert {
	t.Helper()
	for _, a := range alerts {
		if a.Type == typ {
			return a
		}
	}
	t.Fatalf("no %s alert in %v", typ, alerts)
	return models.Alert{}
}

func TestDetect_Empty(t *testing.T) {
	assert.Empty(t, Detect(nil, time.Now()))
}

func TestConsecutiveNegative(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("run of five is high severity", func(t *testing.T) {
		var entries []models.JournalEntry
		for i := 0; i < 5; i++ {
			entries = append(entries, entryAt(now.Add(-time.Duration(i)*time.Hour), -0.5, 2))
		}

		a := findAlert(t, Detect(entries, now), models.AlertConsecutiveNegative)
		assert.Equal(t, models.SeverityHigh, a.Severity)
		assert.Equal(t, 5, a.Data["count"])
	})

	t.Run("run of three is medium severity", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.Add(-1*time.Hour), -0.4, 2),
			entryAt(now.Add(-2*time.Hour), -0.6, 2),
			entryAt(now.Add(-3*time.Hour), -0.9, 2),
			entryAt(now.Add(-4*time.Hour), 0.5, 0), // breaks the run
			entryAt(now.Add(-5*time.Hour), -0.9, 2),
		}

		a := findAlert(t, Detect(entries, now), models.AlertConsecutiveNegative)
		assert.Equal(t, models.SeverityMedium, a.Severity)
		assert.Equal(t, 3, a.Data["count"])
	})

	t.Run("run of two stays silent", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.Add(-1*time.Hour), -0.4, 0),
			entryAt(now.Add(-2*time.Hour), -0.6, 0),
			entryAt(now.Add(-3*time.Hour), 0.2, 0),
		}
		for _, a := range Detect(entries, now) {
			assert.NotEqual(t, models.AlertConsecutiveNegative, a.Type)
		}
	})

	t.Run("boundary score does not count", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.Add(-1*time.Hour), -0.3, 0),
			entryAt(now.Add(-2*time.Hour), -0.3, 0),
			entryAt(now.Add(-3*time.Hour), -0.3, 0),
		}
		assert.Empty(t, Detect(entries, now))
	})

	t.Run("unscored entries are ignored, not run breakers", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.Add(-1*time.Hour), -0.5, 0),
			unscoredAt(now.Add(-90 * time.Minute)),
			entryAt(now.Add(-2*time.Hour), -0.5, 0),
			entryAt(now.Add(-3*time.Hour), -0.5, 0),
		}

		a := findAlert(t, Detect(entries, now), models.AlertConsecutiveNegative)
		assert.Equal(t, 3, a.Data["count"])
	})

	t.Run("run capped by scan limit", func(t *testing.T) {
		var entries []models.JournalEntry
		for i := 0; i < 15; i++ {
			entries = append(entries, entryAt(now.Add(-time.Duration(i)*time.Hour), -0.8, 0))
		}

		a := findAlert(t, Detect(entries, now), models.AlertConsecutiveNegative)
		assert.Equal(t, negativeScanLimit, a.Data["count"])
	})
}

func TestHighStress(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("window average above threshold fires high", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.AddDate(0, 0, -1), 0.0, 8),
			entryAt(now.AddDate(0, 0, -2), 0.0, 9),
			entryAt(now.AddDate(0, 0, -3), 0.0, 7),
			// Outside the 7-day window, must not dilute the average.
			entryAt(now.AddDate(0, 0, -20), 0.0, 0),
		}

		a := findAlert(t, Detect(entries, now), models.AlertHighStress)
		assert.Equal(t, models.SeverityHigh, a.Severity)
		assert.Equal(t, 8.0, a.Data["avg_stress"])
	})

	t.Run("average exactly at threshold stays silent", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.AddDate(0, 0, -1), 0.0, 7),
			entryAt(now.AddDate(0, 0, -2), 0.0, 7),
		}
		for _, a := range Detect(entries, now) {
			assert.NotEqual(t, models.AlertHighStress, a.Type)
		}
	})

	t.Run("average is rounded to one decimal", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.AddDate(0, 0, -1), 0.0, 8),
			entryAt(now.AddDate(0, 0, -2), 0.0, 8),
			entryAt(now.AddDate(0, 0, -3), 0.0, 7),
		}

		a := findAlert(t, Detect(entries, now), models.AlertHighStress)
		assert.Equal(t, 7.7, a.Data["avg_stress"])
	})
}

func TestSuddenDrop(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("large drop fires high", func(t *testing.T) {
		entries := []models.JournalEntry{
			// Prior window (days 4..10 back): averaging 0.6.
			entryAt(now.AddDate(0, 0, -5), 0.5, 0),
			entryAt(now.AddDate(0, 0, -7), 0.7, 0),
			// Recent window: averaging -0.5.
			entryAt(now.AddDate(0, 0, -1), -0.4, 0),
			entryAt(now.AddDate(0, 0, -2), -0.6, 0),
		}

		a := findAlert(t, Detect(entries, now), models.AlertSuddenDrop)
		assert.Equal(t, models.SeverityHigh, a.Severity)
		assert.Equal(t, 1.1, a.Data["drop"])
		assert.Equal(t, -0.5, a.Data["recent_avg"])
		assert.Equal(t, 0.6, a.Data["prior_avg"])
	})

	t.Run("moderate drop fires medium", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.AddDate(0, 0, -5), 0.4, 0),
			entryAt(now.AddDate(0, 0, -1), -0.2, 0),
		}

		a := findAlert(t, Detect(entries, now), models.AlertSuddenDrop)
		assert.Equal(t, models.SeverityMedium, a.Severity)
	})

	t.Run("empty prior window stays silent", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.AddDate(0, 0, -1), -0.9, 0),
			entryAt(now.AddDate(0, 0, -2), -0.9, 0),
		}
		for _, a := range Detect(entries, now) {
			assert.NotEqual(t, models.AlertSuddenDrop, a.Type)
		}
	})

	t.Run("drop exactly at cutoff stays silent", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.AddDate(0, 0, -5), 0.5, 0),
			entryAt(now.AddDate(0, 0, -1), 0.0, 0),
		}
		for _, a := range Detect(entries, now) {
			assert.NotEqual(t, models.AlertSuddenDrop, a.Type)
		}
	})

	t.Run("entries older than the prior window are ignored", func(t *testing.T) {
		entries := []models.JournalEntry{
			entryAt(now.AddDate(0, 0, -15), 1.0, 0),
			entryAt(now.AddDate(0, 0, -1), -0.9, 0),
		}
		for _, a := range Detect(entries, now) {
			assert.NotEqual(t, models.AlertSuddenDrop, a.Type)
		}
	})
}

func TestDetect_MultipleRulesFireTogether(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	entries := []models.JournalEntry{
		entryAt(now.AddDate(0, 0, -5), 0.5, 3), // prior window baseline
		entryAt(now.AddDate(0, 0, -1), -0.8, 9),
		entryAt(now.AddDate(0, 0, -2), -0.7, 9),
		entryAt(now.Add(-2*time.Hour), -0.9, 10),
	}

	alerts := Detect(entries, now)
	require.Len(t, alerts, 3)
	findAlert(t, alerts, models.AlertConsecutiveNegative)
	findAlert(t, alerts, models.AlertHighStress)
	findAlert(t, alerts, models.AlertSuddenDrop)
}
