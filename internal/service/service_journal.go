// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumimood/moodcore/internal/achievements"
	"github.com/lumimood/moodcore/internal/alerts"
	"github.com/lumimood/moodcore/internal/analysis"
	"github.com/lumimood/moodcore/internal/analytics"
	"github.com/lumimood/moodcore/internal/crypto"
	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/internal/store"
	"github.com/lumimood/moodcore/internal/streak"
	"github.com/lumimood/moodcore/internal/validators"
	"github.com/lumimood/moodcore/models"
)

type journalService struct {
	entries      store.EntryRepository
	encryption   *crypto.EncryptionService
	analyzer     *analysis.Analyzer
	achievements *achievements.Engine
	validator    validators.Validator

	logger *logger.Logger
}

// NewJournalService wires the journal orchestration over its collaborators.
func NewJournalService(
	entries store.EntryRepository,
	encryption *crypto.EncryptionService,
	analyzer *analysis.Analyzer,
	engine *achievements.Engine,
	validator validators.Validator,
	log *logger.Logger,
) JournalService {
	return &journalService{
		entries:      entries,
		encryption:   encryption,
		analyzer:     analyzer,
		achievements: engine,
		validator:    validator,
		logger:       log,
	}
}

func (j *journalService) CreateEntry(ctx context.Context, userID int64, content string, metadata models.Metadata) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(content) == "" {
		return models.JournalEntry{}, ErrEmptyContent
	}
	if err := j.validator.Validate(ctx, metadata); err != nil {
		return models.JournalEntry{}, err
	}

	ciphertext, err := j.encryption.Encrypt(content)
	if err != nil {
		return models.JournalEntry{}, err
	}

	// The analysis ladder never fails the write: a degraded result still
	// carries supportive feedback and nil scores.
	result := j.analyzer.Analyze(ctx, content)

	now := time.Now()
	entry := models.JournalEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Ciphertext:  ciphertext,
		SearchIndex: searchIndexPrefix(content),
		Feedback:    result.Feedback,
		Metadata:    metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	entry.SentimentScore = result.Sentiment
	entry.StressIndex = result.Stress

	saved, err := j.entries.SaveEntry(ctx, entry)
	if err != nil {
		return models.JournalEntry{}, err
	}
	saved.Content = content

	// Achievement failures must not surface on the write path.
	if _, checkErr := j.achievements.Check(ctx, userID, models.Activity{}); checkErr != nil {
		log.Err(checkErr).
			Str("func", "journalService.CreateEntry").
			Int64("user_id", userID).
			Msg("achievement check failed after entry creation")
	}

	return saved, nil
}

func (j *journalService) UpdateEntry(ctx context.Context, userID int64, id uuid.UUID, content string, metadata models.Metadata) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(content) == "" {
		return models.JournalEntry{}, ErrEmptyContent
	}
	if err := j.validator.Validate(ctx, metadata); err != nil {
		return models.JournalEntry{}, err
	}

	entry, err := j.entries.GetEntry(ctx, userID, id)
	if err != nil {
		return models.JournalEntry{}, err
	}

	ciphertext, err := j.encryption.Encrypt(content)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.Ciphertext = ciphertext
	entry.SearchIndex = searchIndexPrefix(content)
	entry.Metadata = metadata
	entry.UpdatedAt = time.Now()

	if err = j.entries.UpdateEntry(ctx, entry); err != nil {
		return models.JournalEntry{}, err
	}

	// Re-analyze the new text. A degraded result keeps the previous score
	// instead of erasing it.
	result := j.analyzer.Analyze(ctx, content)
	if result.Sentiment != nil && result.Stress != nil {
		if err = j.entries.UpdateAnalysis(ctx, userID, id, *result.Sentiment, *result.Stress, result.Feedback); err != nil {
			return models.JournalEntry{}, err
		}
		entry.SentimentScore = result.Sentiment
		entry.StressIndex = result.Stress
		entry.Feedback = result.Feedback
	} else {
		log.Info().
			Str("func", "journalService.UpdateEntry").
			Int64("user_id", userID).
			Str("entry_id", id.String()).
			Msg("re-analysis degraded, keeping previous score")
	}

	entry.Content = content
	return entry, nil
}

func (j *journalService) DeleteEntry(ctx context.Context, userID int64, id uuid.UUID) error {
	return j.entries.SoftDeleteEntry(ctx, userID, id)
}

func (j *journalService) PinEntry(ctx context.Context, userID int64, id uuid.UUID, pinned bool) error {
	return j.entries.SetPinned(ctx, userID, id, pinned)
}

func (j *journalService) GetEntry(ctx context.Context, userID int64, id uuid.UUID) (models.JournalEntry, error) {
	entry, err := j.entries.GetEntry(ctx, userID, id)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.Content = j.encryption.Decrypt(entry.Ciphertext)
	return entry, nil
}

func (j *journalService) ListEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	entries, err := j.entries.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	j.decryptAll(entries)
	return entries, nil
}

func (j *journalService) SearchEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error) {
	entries, err := j.entries.SearchEntries(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	j.decryptAll(entries)
	return entries, nil
}

func (j *journalService) ReanalyzeWithImages(ctx context.Context, userID int64, id uuid.UUID, imageURLs []string) (models.AnalysisResult, error) {
	if len(imageURLs) == 0 {
		return models.AnalysisResult{}, ErrNoImages
	}

	entry, err := j.entries.GetEntry(ctx, userID, id)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	content := j.encryption.Decrypt(entry.Ciphertext)
	result := j.analyzer.AnalyzeWithImages(ctx, content, imageURLs)

	if result.Sentiment != nil && result.Stress != nil {
		if err = j.entries.UpdateAnalysis(ctx, userID, id, *result.Sentiment, *result.Stress, result.Feedback); err != nil {
			return models.AnalysisResult{}, err
		}
	}

	return result, nil
}

func (j *journalService) Alerts(ctx context.Context, userID int64) ([]models.Alert, error) {
	entries, err := j.entries.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	return alerts.Detect(entries, time.Now()), nil
}

func (j *journalService) Overview(ctx context.Context, userID int64) (Overview, error) {
	entries, err := j.entries.ListEntries(ctx, userID)
	if err != nil {
		return Overview{}, err
	}

	dates, err := j.entries.DistinctEntryDates(ctx, userID, streak.MaxDates)
	if err != nil {
		return Overview{}, err
	}

	today := time.Now()
	current, longest := streak.Calculate(dates, today)

	return Overview{
		EntryCount:    len(entries),
		CurrentStreak: current,
		LongestStreak: longest,
		Gratitude:     analytics.GratitudeStats(entries, today),
	}, nil
}

func (j *journalService) Dashboard(ctx context.Context, userID int64, period string) (Dashboard, error) {
	entries, err := j.entries.ListEntries(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	now := time.Now()
	return Dashboard{
		MoodTrends:   analytics.MoodTrends(entries, period, analytics.DefaultTrendLookbackDays, now),
		Weather:      analytics.WeatherCorrelation(entries, analytics.DefaultCorrelationLookbackDays, now),
		Sleep:        analytics.SleepCorrelation(entries, analytics.DefaultCorrelationLookbackDays, now),
		FrequentTags: analytics.FrequentTags(entries, analytics.DefaultCorrelationLookbackDays, analytics.DefaultTopN, now),
		StressByTag:  analytics.StressByTag(entries, analytics.DefaultCorrelationLookbackDays, now),
		ActivityMood: analytics.ActivityMoodCorrelation(entries, analytics.DefaultCorrelationLookbackDays, now),
	}, nil
}

func (j *journalService) CalendarData(ctx context.Context, userID int64, year int, month time.Month) ([]analytics.CalendarDay, error) {
	entries, err := j.entries.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	return analytics.CalendarData(entries, year, month), nil
}

func (j *journalService) YearPixels(ctx context.Context, userID int64, year int) (map[string]float64, error) {
	entries, err := j.entries.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	return analytics.YearPixels(entries, year), nil
}

func (j *journalService) CheckAchievements(ctx context.Context, userID int64, activity models.Activity) ([]string, error) {
	return j.achievements.Check(ctx, userID, activity)
}

func (j *journalService) AchievementProgress(ctx context.Context, userID int64, activity models.Activity) ([]models.AchievementProgress, error) {
	return j.achievements.Progress(ctx, userID, activity)
}

// decryptAll fills Content on every entry, substituting the sentinel text
// for rows whose ciphertext fails authentication.
func (j *journalService) decryptAll(entries []models.JournalEntry) {
	for i := range entries {
		entries[i].Content = j.encryption.Decrypt(entries[i].Ciphertext)
	}
}

// searchIndexPrefix keeps the leading runes of the plaintext for substring
// search; everything beyond the cap exists only inside the ciphertext.
func searchIndexPrefix(content string) string {
	runes := []rune(content)
	if len(runes) <= models.SearchIndexLimit {
		return content
	}
	return string(runes[:models.SearchIndexLimit])
}
