// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/models"
)

// entryRepository implements [EntryRepository] over the shared [*DB]. The
// same SQL runs on both backends; only error classification is
// driver-specific.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, entry id, etc.).
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *entryRepository) SaveEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, saveEntry,
		entry.ID,
		entry.UserID,
		entry.Ciphertext,
		entry.SearchIndex,
		entry.SentimentScore,
		entry.StressIndex,
		entry.Feedback,
		entry.Pinned,
		entry.Metadata,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.SaveEntry").
			Int64("user_id", entry.UserID).
			Str("entry_id", entry.ID.String()).
			Msg("failed to insert journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return models.JournalEntry{}, ErrEntryNotSaved
	}

	return entry, nil
}

func (r *entryRepository) GetEntry(ctx context.Context, userID int64, id uuid.UUID) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.JournalEntry
	row := r.DB.QueryRowContext(ctx, getEntry, id, userID)

	if err := scanEntry(row.Scan, &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "entryRepository.GetEntry").
			Int64("user_id", userID).
			Str("entry_id", id.String()).
			Msg("failed to scan journal entry row")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) ListEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	return r.queryEntries(ctx, "entryRepository.ListEntries", userID, listEntries, userID)
}

func (r *entryRepository) SearchEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchEntriesQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.SearchEntries").
			Int64("user_id", userID).
			Msg("failed to build search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, "entryRepository.SearchEntries", userID, query, args...)
}

func (r *entryRepository) UpdateEntry(ctx context.Context, entry models.JournalEntry) error {
	return r.execTargeted(ctx, "entryRepository.UpdateEntry", entry.UserID, entry.ID,
		updateEntry, entry.Ciphertext, entry.SearchIndex, entry.Metadata, entry.UpdatedAt, entry.ID, entry.UserID)
}

func (r *entryRepository) UpdateAnalysis(ctx context.Context, userID int64, id uuid.UUID, sentiment float64, stress int, feedback string) error {
	return r.execTargeted(ctx, "entryRepository.UpdateAnalysis", userID, id,
		updateAnalysis, sentiment, stress, feedback, time.Now(), id, userID)
}

func (r *entryRepository) SetPinned(ctx context.Context, userID int64, id uuid.UUID, pinned bool) error {
	return r.execTargeted(ctx, "entryRepository.SetPinned", userID, id,
		setPinned, pinned, time.Now(), id, userID)
}

func (r *entryRepository) SoftDeleteEntry(ctx context.Context, userID int64, id uuid.UUID) error {
	return r.execTargeted(ctx, "entryRepository.SoftDeleteEntry", userID, id,
		softDeleteEntry, time.Now(), id, userID)
}

func (r *entryRepository) DistinctEntryDates(ctx context.Context, userID int64, limit int) ([]time.Time, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, distinctEntryDates, userID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.DistinctEntryDates").
			Int64("user_id", userID).
			Msg("failed to execute query for distinct entry dates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0, limit)

	for rows.Next() {
		// date(created_at) comes back as time.Time on Postgres and as a
		// "2006-01-02" string on SQLite.
		var raw any
		if scanErr := rows.Scan(&raw); scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.DistinctEntryDates").
				Int64("user_id", userID).
				Msg("failed to scan entry date")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		day, convErr := coerceDay(raw)
		if convErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, convErr)
		}
		dates = append(dates, day)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.DistinctEntryDates").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return dates, nil
}

// queryEntries runs a multi-row entry SELECT and scans the full column set.
func (r *entryRepository) queryEntries(ctx context.Context, caller string, userID int64, query string, args ...any) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Int64("user_id", userID).
			Msg("failed to execute entry query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, 50)

	for rows.Next() {
		var entry models.JournalEntry
		if scanErr := scanEntry(rows.Scan, &entry); scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Int64("user_id", userID).
				Msg("failed to scan journal entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// execTargeted runs a DML statement addressed to one (entry, user) pair and
// maps a zero-row result to [ErrEntryNotFound].
func (r *entryRepository) execTargeted(ctx context.Context, caller string, userID int64, id uuid.UUID, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Int64("user_id", userID).
			Str("entry_id", id.String()).
			Msg("failed to execute entry statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// scanEntry scans the full entry column set in [entryColumns] order.
func scanEntry(scan func(dest ...any) error, entry *models.JournalEntry) error {
	return scan(
		&entry.ID,
		&entry.UserID,
		&entry.Ciphertext,
		&entry.SearchIndex,
		&entry.SentimentScore,
		&entry.StressIndex,
		&entry.Feedback,
		&entry.Pinned,
		&entry.Metadata,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}

// coerceDay normalises a backend-specific calendar-day value to a UTC
// midnight time.
func coerceDay(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC), nil
	case string:
		return time.Parse("2006-01-02", v)
	case []byte:
		return time.Parse("2006-01-02", string(v))
	default:
		return time.Time{}, fmt.Errorf("unsupported entry date type %T", raw)
	}
}
