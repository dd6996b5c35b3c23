// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lumimood/moodcore/internal/analytics"
	"github.com/lumimood/moodcore/models"
)

// JournalService is the orchestration surface over entry storage,
// encryption, analysis, alerts and achievements. Entry writes never fail on
// analysis problems: whatever the analysis tiers do, the entry is persisted.
type JournalService interface {
	// CreateEntry validates the metadata, encrypts the content, analyzes it
	// through the tier ladder and persists the entry. The returned entry
	// carries the decrypted content. Achievement checks run afterwards;
	// their failures are logged, never surfaced.
	CreateEntry(ctx context.Context, userID int64, content string, metadata models.Metadata) (models.JournalEntry, error)

	// UpdateEntry replaces content and metadata of an existing entry and
	// re-analyzes the new text. A degraded analysis keeps the previous
	// score rather than erasing it.
	UpdateEntry(ctx context.Context, userID int64, id uuid.UUID, content string, metadata models.Metadata) (models.JournalEntry, error)

	// DeleteEntry soft-deletes: the row stays, reads no longer see it.
	DeleteEntry(ctx context.Context, userID int64, id uuid.UUID) error

	PinEntry(ctx context.Context, userID int64, id uuid.UUID, pinned bool) error

	GetEntry(ctx context.Context, userID int64, id uuid.UUID) (models.JournalEntry, error)

	// ListEntries returns the user's entries newest first, decrypted. A row
	// that fails authentication gets sentinel content; listing never aborts
	// over individual corrupt rows.
	ListEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error)

	// SearchEntries applies the structured filter, then decrypts like
	// ListEntries.
	SearchEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error)

	// ReanalyzeWithImages re-runs analysis over an existing entry with
	// image attachments through the vision-capable remote tier and stores
	// the fresh result.
	ReanalyzeWithImages(ctx context.Context, userID int64, id uuid.UUID, imageURLs []string) (models.AnalysisResult, error)

	// Alerts runs the rule-based detector over the user's recent entries.
	Alerts(ctx context.Context, userID int64) ([]models.Alert, error)

	// Overview returns the journaling summary for the home screen.
	Overview(ctx context.Context, userID int64) (Overview, error)

	// Dashboard aggregates the analytics rollups used by the charts.
	Dashboard(ctx context.Context, userID int64, period string) (Dashboard, error)

	CalendarData(ctx context.Context, userID int64, year int, month time.Month) ([]analytics.CalendarDay, error)
	YearPixels(ctx context.Context, userID int64, year int) (map[string]float64, error)

	// CheckAchievements evaluates the catalog with the collaborator-owned
	// activity snapshot and returns newly unlocked achievement ids.
	CheckAchievements(ctx context.Context, userID int64, activity models.Activity) ([]string, error)

	// AchievementProgress reports every catalog entry with its current
	// metric value and unlock state.
	AchievementProgress(ctx context.Context, userID int64, activity models.Activity) ([]models.AchievementProgress, error)
}

// Overview is the home-screen summary.
type Overview struct {
	EntryCount    int                       `json:"entry_count"`
	CurrentStreak int                       `json:"current_streak"`
	LongestStreak int                       `json:"longest_streak"`
	Gratitude     analytics.GratitudeReport `json:"gratitude"`
}

// Dashboard bundles the chart rollups for one user.
type Dashboard struct {
	MoodTrends   []analytics.TrendPoint    `json:"mood_trends"`
	Weather      analytics.WeatherReport   `json:"weather_correlation"`
	Sleep        analytics.SleepReport     `json:"sleep_correlation"`
	FrequentTags []analytics.TagCount      `json:"frequent_tags"`
	StressByTag  []analytics.TagStress     `json:"stress_by_tag"`
	ActivityMood []analytics.ActivityMood  `json:"activity_mood"`
}
