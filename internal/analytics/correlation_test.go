// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumimood/moodcore/models"
)

func weatherEntry(created time.Time, sentiment, temperature float64) models.JournalEntry {
	e := entry(created, sentiment, 0)
	e.Metadata.Temperature = &temperature
	return e
}

func sleepEntry(created time.Time, sentiment, hours float64, quality *int) models.JournalEntry {
	e := entry(created, sentiment, 0)
	e.Metadata.SleepHours = &hours
	e.Metadata.SleepQuality = quality
	return e
}

func TestWeatherCorrelation_TooFewSamples(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	entries := []models.JournalEntry{
		weatherEntry(now, 0.5, 20),
		weatherEntry(now.AddDate(0, 0, -1), -0.2, 5),
		entry(now.AddDate(0, 0, -2), 0.1, 0), // no temperature, not a pair
	}

	report := WeatherCorrelation(entries, DefaultCorrelationLookbackDays, now)
	assert.Equal(t, 2, report.SampleSize)
	assert.Len(t, report.Scatter, 2)
	assert.Nil(t, report.Correlation)
	assert.Nil(t, report.PValue)
}

func TestWeatherCorrelation_PerfectPositive(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// Sentiment rises linearly with temperature.
	entries := []models.JournalEntry{
		weatherEntry(now, -0.5, 0),
		weatherEntry(now.AddDate(0, 0, -1), 0.0, 10),
		weatherEntry(now.AddDate(0, 0, -2), 0.5, 20),
	}

	report := WeatherCorrelation(entries, DefaultCorrelationLookbackDays, now)
	require.NotNil(t, report.Correlation)
	require.NotNil(t, report.PValue)
	assert.Equal(t, 1.0, *report.Correlation)
	assert.Equal(t, 0.0, *report.PValue)
	assert.Equal(t, 3, report.SampleSize)
}

func TestWeatherCorrelation_ConstantSeries(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// Temperature never varies, so r is undefined.
	entries := []models.JournalEntry{
		weatherEntry(now, -0.5, 18),
		weatherEntry(now.AddDate(0, 0, -1), 0.0, 18),
		weatherEntry(now.AddDate(0, 0, -2), 0.5, 18),
	}

	report := WeatherCorrelation(entries, DefaultCorrelationLookbackDays, now)
	assert.Equal(t, 3, report.SampleSize)
	assert.Nil(t, report.Correlation)
	assert.Nil(t, report.PValue)
}

func TestWeatherCorrelation_LookbackWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	entries := []models.JournalEntry{
		weatherEntry(now, 0.5, 20),
		weatherEntry(now.AddDate(0, 0, -200), -0.2, 5),
	}

	report := WeatherCorrelation(entries, DefaultCorrelationLookbackDays, now)
	assert.Equal(t, 1, report.SampleSize)
}

func TestSleepCorrelation(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	quality := func(v int) *int { return &v }

	t.Run("hours and quality both correlated", func(t *testing.T) {
		entries := []models.JournalEntry{
			sleepEntry(now, -0.6, 4, quality(1)),
			sleepEntry(now.AddDate(0, 0, -1), 0.0, 7, quality(3)),
			sleepEntry(now.AddDate(0, 0, -2), 0.6, 9, quality(5)),
		}

		report := SleepCorrelation(entries, DefaultCorrelationLookbackDays, now)
		assert.Equal(t, 3, report.SampleSize)
		require.NotNil(t, report.HoursCorrelation)
		require.NotNil(t, report.QualityCorrelation)
		assert.InDelta(t, 1.0, *report.HoursCorrelation, 0.01)
		assert.Equal(t, 1.0, *report.QualityCorrelation)
	})

	t.Run("quality subset below minimum stays nil", func(t *testing.T) {
		entries := []models.JournalEntry{
			sleepEntry(now, -0.6, 4, quality(1)),
			sleepEntry(now.AddDate(0, 0, -1), 0.0, 7, nil),
			sleepEntry(now.AddDate(0, 0, -2), 0.6, 9, quality(5)),
		}

		report := SleepCorrelation(entries, DefaultCorrelationLookbackDays, now)
		require.NotNil(t, report.HoursCorrelation)
		assert.Nil(t, report.QualityCorrelation)
		assert.Nil(t, report.QualityPValue)
	})

	t.Run("no sleep data", func(t *testing.T) {
		entries := []models.JournalEntry{
			entry(now, 0.5, 2),
		}

		report := SleepCorrelation(entries, DefaultCorrelationLookbackDays, now)
		assert.Zero(t, report.SampleSize)
		assert.Nil(t, report.HoursCorrelation)
		assert.Empty(t, report.Scatter)
	})
}

func TestPearson_Rounding(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 1, 4, 3, 5}

	r, p, ok := pearson(xs, ys)
	require.True(t, ok)
	assert.Equal(t, 0.8, r)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}
