// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package achievements evaluates the static achievement catalog against a
// user's activity and unlocks newly-satisfied achievements exactly once.
//
// The per-(user, achievement) state machine is locked → unlocked, one-way.
// Unlocking is an insert-if-absent against a storage uniqueness constraint,
// so concurrent checks for the same user cannot double-insert; the loser of
// the race sees "already unlocked" and moves on.
package achievements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/internal/store"
	"github.com/lumimood/moodcore/internal/streak"
	"github.com/lumimood/moodcore/models"
)

// EntrySource supplies the entry history an achievement check derives its
// metrics from.
type EntrySource interface {
	ListEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	DistinctEntryDates(ctx context.Context, userID int64, limit int) ([]time.Time, error)
}

// UnlockStore persists the one-way unlock rows. InsertUnlock must return
// [store.ErrAlreadyUnlocked] when the (user, achievement) pair exists.
type UnlockStore interface {
	UnlockedAchievements(ctx context.Context, userID int64) ([]models.UnlockedAchievement, error)
	InsertUnlock(ctx context.Context, userID int64, achievementID string) error
}

// Decrypter opens entry ciphertext for the one metric that needs plaintext
// (max entry length). Rows that fail to decrypt are skipped.
type Decrypter interface {
	Decrypt(token string) string
}

// Engine runs catalog checks. Safe for concurrent use; it holds no mutable
// state of its own.
type Engine struct {
	entries   EntrySource
	unlocks   UnlockStore
	decrypter Decrypter
	logger    *logger.Logger
}

// NewEngine wires an achievement engine.
func NewEngine(entries EntrySource, unlocks UnlockStore, decrypter Decrypter, log *logger.Logger) *Engine {
	return &Engine{
		entries:   entries,
		unlocks:   unlocks,
		decrypter: decrypter,
		logger:    log,
	}
}

// Check evaluates every catalog entry not yet unlocked for the user and
// unlocks those whose metric has reached its threshold. Returns the ids
// newly unlocked by this call, in catalog order.
//
// Idempotent by construction: a second call with no new activity finds
// everything already unlocked and returns an empty list; an unlock race
// lost to a concurrent check is treated as already-unlocked, not an error.
func (e *Engine) Check(ctx context.Context, userID int64, activity models.Activity) ([]string, error) {
	log := logger.FromContext(ctx)

	existing, err := e.unlockedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress, err := e.progress(ctx, userID, activity)
	if err != nil {
		return nil, err
	}

	var newlyUnlocked []string
	for _, def := range Catalog {
		if _, ok := existing[def.ID]; ok {
			continue
		}
		if progress[def.ID] < def.Threshold {
			continue
		}

		if err := e.unlocks.InsertUnlock(ctx, userID, def.ID); err != nil {
			if errors.Is(err, store.ErrAlreadyUnlocked) {
				continue
			}
			return nil, fmt.Errorf("unlock achievement %s: %w", def.ID, err)
		}

		log.Info().Int64("user_id", userID).Str("achievement", def.ID).Msg("achievement unlocked")
		newlyUnlocked = append(newlyUnlocked, def.ID)
	}

	return newlyUnlocked, nil
}

// Progress reports the status of every catalog entry for UI display, with
// current clamped so it never exceeds the threshold.
func (e *Engine) Progress(ctx context.Context, userID int64, activity models.Activity) ([]models.AchievementProgress, error) {
	unlocked, err := e.unlocks.UnlockedAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load unlocked achievements: %w", err)
	}
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, u := range unlocked {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	progress, err := e.progress(ctx, userID, activity)
	if err != nil {
		return nil, err
	}

	result := make([]models.AchievementProgress, 0, len(Catalog))
	for _, def := range Catalog {
		p := models.AchievementProgress{
			AchievementDefinition: def,
			Current:               min(progress[def.ID], def.Threshold),
		}
		if at, ok := unlockedAt[def.ID]; ok {
			p.Unlocked = true
			t := at
			p.UnlockedAt = &t
		}
		result = append(result, p)
	}
	return result, nil
}

func (e *Engine) unlockedSet(ctx context.Context, userID int64) (map[string]struct{}, error) {
	unlocked, err := e.unlocks.UnlockedAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load unlocked achievements: %w", err)
	}
	set := make(map[string]struct{}, len(unlocked))
	for _, u := range unlocked {
		set[u.AchievementID] = struct{}{}
	}
	return set, nil
}

// progress computes the current metric value for every catalog entry.
// Entry-derived metrics come from the store; collaborator-owned counters
// come from the activity snapshot.
func (e *Engine) progress(ctx context.Context, userID int64, activity models.Activity) (map[string]int, error) {
	entries, err := e.entries.ListEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	dates, err := e.entries.DistinctEntryDates(ctx, userID, streak.MaxDates)
	if err != nil {
		return nil, fmt.Errorf("load entry dates: %w", err)
	}

	m := newEntryMetrics(entries, dates, e.decrypter)

	return map[string]int{
		"first_note":  m.noteCount,
		"notes_10":    m.noteCount,
		"notes_50":    m.noteCount,
		"notes_100":   m.noteCount,
		"notes_200":   m.noteCount,
		"long_writer": m.maxNoteLength,
		"first_image": activity.ImageCount,

		"streak_3":           m.longestStreak,
		"streak_7":           m.longestStreak,
		"streak_30":          m.longestStreak,
		"weekend_warrior":    boolMetric(m.hasWeekendPair),
		"dedicated_months_3": m.distinctMonths,

		"mood_explorer":   m.moodBuckets,
		"positive_streak": m.positiveStreak,
		"mood_improver":   m.moodImproving,
		"self_aware":      m.analyzedCount,
		"stress_manager":  m.lowStressCount,
		"emotional_range": m.emotionalRange,

		"first_share":          activity.ShareCount,
		"first_booking":        activity.BookingCount,
		"first_ai_chat":        activity.ChatSessionCount,
		"ai_chat_10":           activity.ChatSessionCount,
		"conversation_starter": activity.ConversationCount,
		"messages_50":          activity.MessageCount,

		"night_owl":      boolMetric(m.hasNightEntry),
		"early_bird":     boolMetric(m.hasEarlyEntry),
		"pin_master":     m.pinnedCount,
		"tag_collector":  m.distinctTags,
		"weather_logger": m.weatherCount,

		"feedback_giver": activity.FeedbackCount,
	}, nil
}

func boolMetric(b bool) int {
	if b {
		return 1
	}
	return 0
}
