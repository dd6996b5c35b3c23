// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package analytics aggregates a user's entry history into chart-ready
// rollups. Every function is pure: the caller loads (and decides how far
// back to load) the entries, analytics only folds them.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/lumimood/moodcore/internal/streak"
	"github.com/lumimood/moodcore/models"
)

// Rollup periods accepted by [MoodTrends].
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// Default lookback windows, matching what the dashboards request.
const (
	DefaultTrendLookbackDays       = 30
	DefaultCorrelationLookbackDays = 90
	DefaultTopN                    = 10
)

// TrendPoint is one period bucket of the mood trend line.
type TrendPoint struct {
	Name         string  `json:"name"`
	AvgSentiment float64 `json:"avg_sentiment"`
	AvgStress    float64 `json:"avg_stress"`
	Count        int     `json:"count"`
}

// TagCount is one bar of the frequent-tags chart.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TagStress is one spoke of the stress-by-tag radar.
type TagStress struct {
	Tag       string  `json:"tag"`
	AvgStress float64 `json:"avg_stress"`
	Count     int     `json:"count"`
}

// ActivityMood is the per-activity sentiment aggregate.
type ActivityMood struct {
	Name         string  `json:"name"`
	AvgSentiment float64 `json:"avg_sentiment"`
	Count        int     `json:"count"`
}

// CalendarDay is one day cell of the month calendar.
type CalendarDay struct {
	Date         string  `json:"date"`
	AvgSentiment float64 `json:"avg_sentiment"`
	Count        int     `json:"count"`
}

// GratitudeReport summarises gratitude-typed entries.
type GratitudeReport struct {
	Count  int `json:"gratitude_count"`
	Streak int `json:"gratitude_streak"`
}

// MoodTrends buckets scored entries of the lookback window into ISO weeks
// (period "week") or calendar months and averages sentiment (2 decimals)
// and stress (1 decimal) per bucket. Buckets come back in chronological
// order; both bucket name formats sort lexicographically.
func MoodTrends(entries []models.JournalEntry, period string, lookbackDays int, now time.Time) []TrendPoint {
	since := now.AddDate(0, 0, -lookbackDays)

	type bucket struct {
		sentimentSum float64
		stressSum    float64
		count        int
	}
	buckets := make(map[string]*bucket)

	for _, e := range entries {
		if !e.Scored() || e.CreatedAt.Before(since) {
			continue
		}

		var name string
		if period == PeriodWeek {
			isoYear, isoWeek := e.CreatedAt.ISOWeek()
			name = fmt.Sprintf("%d-W%02d", isoYear, isoWeek)
		} else {
			name = e.CreatedAt.Format("2006-01")
		}

		b := buckets[name]
		if b == nil {
			b = &bucket{}
			buckets[name] = b
		}
		b.sentimentSum += *e.SentimentScore
		b.stressSum += float64(*e.StressIndex)
		b.count++
	}

	points := make([]TrendPoint, 0, len(buckets))
	for name, b := range buckets {
		points = append(points, TrendPoint{
			Name:         name,
			AvgSentiment: round2(b.sentimentSum / float64(b.count)),
			AvgStress:    round1(b.stressSum / float64(b.count)),
			Count:        b.count,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Name < points[j].Name })

	return points
}

// FrequentTags counts tag occurrences over the lookback window and returns
// the topN most frequent, descending.
func FrequentTags(entries []models.JournalEntry, lookbackDays, topN int, now time.Time) []TagCount {
	since := now.AddDate(0, 0, -lookbackDays)

	counts := make(map[string]int)
	for _, e := range entries {
		if e.CreatedAt.Before(since) {
			continue
		}
		for _, tag := range e.Metadata.Tags {
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		result = append(result, TagCount{Name: tag, Count: count})
	}
	sortByCountThenName(result, func(t TagCount) (int, string) { return t.Count, t.Name })

	if len(result) > topN {
		result = result[:topN]
	}
	return result
}

// StressByTag averages the stress index per tag over the lookback window,
// sorted by sample count descending, top 10.
func StressByTag(entries []models.JournalEntry, lookbackDays int, now time.Time) []TagStress {
	since := now.AddDate(0, 0, -lookbackDays)

	type agg struct {
		sum   int
		count int
	}
	byTag := make(map[string]*agg)

	for _, e := range entries {
		if e.StressIndex == nil || e.CreatedAt.Before(since) {
			continue
		}
		for _, tag := range e.Metadata.Tags {
			a := byTag[tag]
			if a == nil {
				a = &agg{}
				byTag[tag] = a
			}
			a.sum += *e.StressIndex
			a.count++
		}
	}

	result := make([]TagStress, 0, len(byTag))
	for tag, a := range byTag {
		result = append(result, TagStress{
			Tag:       tag,
			AvgStress: round1(float64(a.sum) / float64(a.count)),
			Count:     a.count,
		})
	}
	sortByCountThenName(result, func(t TagStress) (int, string) { return t.Count, t.Tag })

	if len(result) > DefaultTopN {
		result = result[:DefaultTopN]
	}
	return result
}

// ActivityMoodCorrelation averages sentiment per recorded activity over the
// lookback window, sorted by sample count descending.
func ActivityMoodCorrelation(entries []models.JournalEntry, lookbackDays int, now time.Time) []ActivityMood {
	since := now.AddDate(0, 0, -lookbackDays)

	type agg struct {
		sum   float64
		count int
	}
	byActivity := make(map[string]*agg)

	for _, e := range entries {
		if e.SentimentScore == nil || e.CreatedAt.Before(since) {
			continue
		}
		for _, activity := range e.Metadata.Activities {
			a := byActivity[activity]
			if a == nil {
				a = &agg{}
				byActivity[activity] = a
			}
			a.sum += *e.SentimentScore
			a.count++
		}
	}

	result := make([]ActivityMood, 0, len(byActivity))
	for name, a := range byActivity {
		result = append(result, ActivityMood{
			Name:         name,
			AvgSentiment: round2(a.sum / float64(a.count)),
			Count:        a.count,
		})
	}
	sortByCountThenName(result, func(a ActivityMood) (int, string) { return a.Count, a.Name })

	return result
}

// CalendarData averages sentiment per day for one month, one element per day
// that has at least one scored entry, ascending by date.
func CalendarData(entries []models.JournalEntry, year int, month time.Month) []CalendarDay {
	type agg struct {
		sum   float64
		count int
	}
	byDay := make(map[string]*agg)

	for _, e := range entries {
		if e.SentimentScore == nil {
			continue
		}
		if e.CreatedAt.Year() != year || e.CreatedAt.Month() != month {
			continue
		}
		day := e.CreatedAt.Format("2006-01-02")
		a := byDay[day]
		if a == nil {
			a = &agg{}
			byDay[day] = a
		}
		a.sum += *e.SentimentScore
		a.count++
	}

	result := make([]CalendarDay, 0, len(byDay))
	for day, a := range byDay {
		result = append(result, CalendarDay{
			Date:         day,
			AvgSentiment: round2(a.sum / float64(a.count)),
			Count:        a.count,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })

	return result
}

// YearPixels returns the per-day average sentiment (2 decimals) for one
// year, keyed by "YYYY-MM-DD".
func YearPixels(entries []models.JournalEntry, year int) map[string]float64 {
	type agg struct {
		sum   float64
		count int
	}
	byDay := make(map[string]*agg)

	for _, e := range entries {
		if e.SentimentScore == nil || e.CreatedAt.Year() != year {
			continue
		}
		day := e.CreatedAt.Format("2006-01-02")
		a := byDay[day]
		if a == nil {
			a = &agg{}
			byDay[day] = a
		}
		a.sum += *e.SentimentScore
		a.count++
	}

	pixels := make(map[string]float64, len(byDay))
	for day, a := range byDay {
		pixels[day] = round2(a.sum / float64(a.count))
	}
	return pixels
}

// GratitudeStats counts gratitude-typed entries and computes the current
// consecutive-day gratitude streak anchored at today (or yesterday).
func GratitudeStats(entries []models.JournalEntry, today time.Time) GratitudeReport {
	var report GratitudeReport

	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if e.Metadata.Type != "gratitude" {
			continue
		}
		report.Count++
		dates = append(dates, e.CreatedAt)
	}

	report.Streak, _ = streak.Calculate(dates, today)
	return report
}

// sortByCountThenName orders descending by count, breaking ties by name so
// the output is deterministic.
func sortByCountThenName[T any](items []T, key func(T) (int, string)) {
	sort.Slice(items, func(i, j int) bool {
		ci, ni := key(items[i])
		cj, nj := key(items[j])
		if ci != cj {
			return ci > cj
		}
		return ni < nj
	})
}
