// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/models"
)

// achievementRepository implements [AchievementRepository]. Unlock rows are
// insert-only; the (user_id, achievement_id) uniqueness constraint makes the
// unlock race-safe across concurrent checks.
type achievementRepository struct {
	*DB
	logger *logger.Logger
}

// NewAchievementRepository constructs an [AchievementRepository] backed by
// the provided database connection and logger.
func NewAchievementRepository(db *DB, logger *logger.Logger) AchievementRepository {
	logger.Debug().Msg("creating achievement repository")
	return &achievementRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *achievementRepository) UnlockedAchievements(ctx context.Context, userID int64) ([]models.UnlockedAchievement, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, unlockedAchievements, userID)
	if err != nil {
		log.Err(err).
			Str("func", "achievementRepository.UnlockedAchievements").
			Int64("user_id", userID).
			Msg("failed to execute query for unlocked achievements")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	unlocked := make([]models.UnlockedAchievement, 0, 30)

	for rows.Next() {
		var u models.UnlockedAchievement
		if scanErr := rows.Scan(&u.UserID, &u.AchievementID, &u.UnlockedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "achievementRepository.UnlockedAchievements").
				Int64("user_id", userID).
				Msg("failed to scan unlocked achievement row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		unlocked = append(unlocked, u)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "achievementRepository.UnlockedAchievements").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return unlocked, nil
}

func (r *achievementRepository) InsertUnlock(ctx context.Context, userID int64, achievementID string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertUnlock, userID, achievementID, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyUnlocked
		}

		log.Err(err).
			Str("func", "achievementRepository.InsertUnlock").
			Int64("user_id", userID).
			Str("achievement_id", achievementID).
			Msg("failed to insert achievement unlock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
