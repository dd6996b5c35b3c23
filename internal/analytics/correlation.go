// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package analytics

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lumimood/moodcore/models"
)

// minCorrelationSamples is the smallest sample for which a Pearson r is
// reported; below it the correlation fields stay nil and only the raw
// scatter data is returned.
const minCorrelationSamples = 3

// WeatherPair is one scatter point of sentiment against temperature.
type WeatherPair struct {
	Sentiment   float64 `json:"sentiment"`
	Temperature float64 `json:"temperature"`
}

// WeatherReport is the sentiment/temperature correlation result.
type WeatherReport struct {
	Correlation *float64      `json:"correlation"`
	PValue      *float64      `json:"p_value"`
	Scatter     []WeatherPair `json:"scatter_data"`
	SampleSize  int           `json:"sample_size"`
}

// SleepPair is one scatter point of sentiment against recorded sleep.
type SleepPair struct {
	Sentiment    float64 `json:"sentiment"`
	SleepHours   float64 `json:"sleep_hours"`
	SleepQuality *int    `json:"sleep_quality"`
}

// SleepReport is the sentiment/sleep correlation result. The quality
// correlation is computed over the subset of pairs that carry a quality
// rating and needs its own minimum sample.
type SleepReport struct {
	HoursCorrelation   *float64    `json:"hours_correlation"`
	HoursPValue        *float64    `json:"hours_p_value,omitempty"`
	QualityCorrelation *float64    `json:"quality_correlation,omitempty"`
	QualityPValue      *float64    `json:"quality_p_value,omitempty"`
	Scatter            []SleepPair `json:"scatter_data"`
	SampleSize         int         `json:"sample_size"`
}

// WeatherCorrelation computes the Pearson correlation between sentiment and
// the temperature recorded in entry metadata over the lookback window.
func WeatherCorrelation(entries []models.JournalEntry, lookbackDays int, now time.Time) WeatherReport {
	since := now.AddDate(0, 0, -lookbackDays)

	var pairs []WeatherPair
	for _, e := range entries {
		if e.SentimentScore == nil || e.Metadata.Temperature == nil || e.CreatedAt.Before(since) {
			continue
		}
		pairs = append(pairs, WeatherPair{
			Sentiment:   *e.SentimentScore,
			Temperature: *e.Metadata.Temperature,
		})
	}

	report := WeatherReport{Scatter: pairs, SampleSize: len(pairs)}
	if len(pairs) < minCorrelationSamples {
		return report
	}

	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.Sentiment
		ys[i] = p.Temperature
	}

	if r, p, ok := pearson(xs, ys); ok {
		report.Correlation = &r
		report.PValue = &p
	}
	return report
}

// SleepCorrelation computes Pearson correlations of sentiment against sleep
// hours and (where rated) sleep quality from entry metadata.
func SleepCorrelation(entries []models.JournalEntry, lookbackDays int, now time.Time) SleepReport {
	since := now.AddDate(0, 0, -lookbackDays)

	var pairs []SleepPair
	for _, e := range entries {
		if e.SentimentScore == nil || e.Metadata.SleepHours == nil || e.CreatedAt.Before(since) {
			continue
		}
		pairs = append(pairs, SleepPair{
			Sentiment:    *e.SentimentScore,
			SleepHours:   *e.Metadata.SleepHours,
			SleepQuality: e.Metadata.SleepQuality,
		})
	}

	report := SleepReport{Scatter: pairs, SampleSize: len(pairs)}
	if len(pairs) < minCorrelationSamples {
		return report
	}

	sentiments := make([]float64, len(pairs))
	hours := make([]float64, len(pairs))
	for i, p := range pairs {
		sentiments[i] = p.Sentiment
		hours[i] = p.SleepHours
	}
	if r, p, ok := pearson(sentiments, hours); ok {
		report.HoursCorrelation = &r
		report.HoursPValue = &p
	}

	var qualitySentiments, qualities []float64
	for _, p := range pairs {
		if p.SleepQuality != nil {
			qualitySentiments = append(qualitySentiments, p.Sentiment)
			qualities = append(qualities, float64(*p.SleepQuality))
		}
	}
	if len(qualities) >= minCorrelationSamples {
		if r, p, ok := pearson(qualitySentiments, qualities); ok {
			report.QualityCorrelation = &r
			report.QualityPValue = &p
		}
	}

	return report
}

// pearson returns the rounded Pearson r (3 decimals) and its two-sided
// p-value (4 decimals, Student's t with n-2 degrees of freedom). ok is
// false when either series is constant and r is undefined.
func pearson(xs, ys []float64) (r, p float64, ok bool) {
	r = stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, 0, false
	}

	n := float64(len(xs))
	switch {
	case 1-r*r <= 0:
		// Perfectly collinear data.
		p = 0
	default:
		t := r * math.Sqrt((n-2)/(1-r*r))
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 2}
		p = 2 * dist.CDF(-math.Abs(t))
	}

	return round3(r), round4(p), true
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
