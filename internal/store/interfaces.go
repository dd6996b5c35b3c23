// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lumimood/moodcore/models"
)

// EntryRepository is the persistence surface for journal entries. Soft
// deletion is the only deletion: rows stay in the table with deleted=true
// and every read method filters them out.
type EntryRepository interface {
	SaveEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	GetEntry(ctx context.Context, userID int64, id uuid.UUID) (models.JournalEntry, error)

	// ListEntries returns every non-deleted entry of the user, newest first.
	ListEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error)

	// SearchEntries applies the structured filter; zero-valued filter fields
	// are ignored. Results are newest first.
	SearchEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error)

	// UpdateEntry rewrites the mutable content columns (ciphertext,
	// search_index, metadata) of an existing entry.
	UpdateEntry(ctx context.Context, entry models.JournalEntry) error

	// UpdateAnalysis stores one analysis pass: sentiment and stress land
	// together with the feedback text.
	UpdateAnalysis(ctx context.Context, userID int64, id uuid.UUID, sentiment float64, stress int, feedback string) error

	SetPinned(ctx context.Context, userID int64, id uuid.UUID, pinned bool) error
	SoftDeleteEntry(ctx context.Context, userID int64, id uuid.UUID) error

	// DistinctEntryDates returns the distinct calendar days the user wrote
	// on, newest first, capped at limit.
	DistinctEntryDates(ctx context.Context, userID int64, limit int) ([]time.Time, error)
}

// AchievementRepository persists one-way unlock rows. InsertUnlock returns
// [ErrAlreadyUnlocked] when the (user_id, achievement_id) pair exists.
type AchievementRepository interface {
	UnlockedAchievements(ctx context.Context, userID int64) ([]models.UnlockedAchievement, error)
	InsertUnlock(ctx context.Context, userID int64, achievementID string) error
}
