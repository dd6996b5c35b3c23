// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package alerts scans a user's recent journal entries for statistical
// mood-risk patterns. Alerts are derived values computed per call;
// nothing here touches storage.
package alerts

import (
	"math"
	"sort"
	"time"

	"github.com/lumimood/moodcore/models"
)

// Rule thresholds.
const (
	negativeScoreCutoff = -0.3 // an entry below this counts toward the negative run
	negativeRunMedium   = 3
	negativeRunHigh     = 5
	negativeScanLimit   = 10 // only the most recent scored entries are scanned

	stressWindowDays   = 7
	stressAvgThreshold = 7.0

	dropRecentDays = 3
	dropPriorDays  = 10 // prior window is days 4..10 back
	dropMedium     = 0.5
	dropHigh       = 0.8
)

// Detect evaluates the three mood-risk rules over entries (already filtered
// to non-deleted, any order) as of now. The rules are independent: a rule
// without enough data is suppressed while the others still run, and all
// three may fire in one call.
func Detect(entries []models.JournalEntry, now time.Time) []models.Alert {
	alerts := make([]models.Alert, 0, 3)

	if a, ok := consecutiveNegative(entries); ok {
		alerts = append(alerts, a)
	}
	if a, ok := highStress(entries, now); ok {
		alerts = append(alerts, a)
	}
	if a, ok := suddenDrop(entries, now); ok {
		alerts = append(alerts, a)
	}

	return alerts
}

// consecutiveNegative counts the run of entries with sentiment below the
// cutoff, walking most-recent-first over scored entries only and stopping
// at the first one that does not qualify.
func consecutiveNegative(entries []models.JournalEntry) (models.Alert, bool) {
	scores := recentScores(entries, negativeScanLimit)

	run := 0
	for _, s := range scores {
		if s < negativeScoreCutoff {
			run++
		} else {
			break
		}
	}

	if run < negativeRunMedium {
		return models.Alert{}, false
	}

	severity := models.SeverityMedium
	if run >= negativeRunHigh {
		severity = models.SeverityHigh
	}
	return models.Alert{
		Type:     models.AlertConsecutiveNegative,
		Severity: severity,
		Data:     map[string]any{"count": run},
	}, true
}

// highStress averages the stress index over the trailing window and fires
// high when the average exceeds the threshold. No stressed entries in the
// window suppresses the rule.
func highStress(entries []models.JournalEntry, now time.Time) (models.Alert, bool) {
	since := now.AddDate(0, 0, -stressWindowDays)

	var sum float64
	var n int
	for _, e := range entries {
		if e.StressIndex == nil || e.CreatedAt.Before(since) {
			continue
		}
		sum += float64(*e.StressIndex)
		n++
	}
	if n == 0 {
		return models.Alert{}, false
	}

	avg := sum / float64(n)
	if avg <= stressAvgThreshold {
		return models.Alert{}, false
	}

	return models.Alert{
		Type:     models.AlertHighStress,
		Severity: models.SeverityHigh,
		Data:     map[string]any{"avg_stress": round1(avg)},
	}, true
}

// suddenDrop compares average sentiment over the recent window against the
// prior window (days 4..10 back). Either window empty suppresses the rule.
func suddenDrop(entries []models.JournalEntry, now time.Time) (models.Alert, bool) {
	recentSince := now.AddDate(0, 0, -dropRecentDays)
	priorSince := now.AddDate(0, 0, -dropPriorDays)

	var recentSum, priorSum float64
	var recentN, priorN int
	for _, e := range entries {
		if e.SentimentScore == nil {
			continue
		}
		switch {
		case !e.CreatedAt.Before(recentSince):
			recentSum += *e.SentimentScore
			recentN++
		case !e.CreatedAt.Before(priorSince):
			priorSum += *e.SentimentScore
			priorN++
		}
	}
	if recentN == 0 || priorN == 0 {
		return models.Alert{}, false
	}

	recentAvg := recentSum / float64(recentN)
	priorAvg := priorSum / float64(priorN)
	drop := priorAvg - recentAvg
	if drop <= dropMedium {
		return models.Alert{}, false
	}

	severity := models.SeverityMedium
	if drop > dropHigh {
		severity = models.SeverityHigh
	}
	return models.Alert{
		Type:     models.AlertSuddenDrop,
		Severity: severity,
		Data: map[string]any{
			"recent_avg": round2(recentAvg),
			"prior_avg":  round2(priorAvg),
			"drop":       round2(drop),
		},
	}, true
}

// recentScores returns up to limit sentiment scores, most recent first.
func recentScores(entries []models.JournalEntry, limit int) []float64 {
	sorted := make([]models.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if e.SentimentScore != nil {
			sorted = append(sorted, e)
		}
	}
	sortByCreatedDesc(sorted)

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	scores := make([]float64, len(sorted))
	for i, e := range sorted {
		scores[i] = *e.SentimentScore
	}
	return scores
}

func sortByCreatedDesc(entries []models.JournalEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
