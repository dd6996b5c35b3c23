// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/lumimood/moodcore/models"
)

const (
	saveEntry = `
		INSERT INTO journal_entries (
			id,
			user_id,
			ciphertext,
			search_index,
			sentiment_score,
			stress_index,
			feedback,
			pinned,
			metadata,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	getEntry = `
		SELECT
			id,
			user_id,
			ciphertext,
			search_index,
			sentiment_score,
			stress_index,
			feedback,
			pinned,
			metadata,
			created_at,
			updated_at
		FROM journal_entries
		WHERE id = $1 AND user_id = $2 AND deleted = FALSE;`

	listEntries = `
		SELECT
			id,
			user_id,
			ciphertext,
			search_index,
			sentiment_score,
			stress_index,
			feedback,
			pinned,
			metadata,
			created_at,
			updated_at
		FROM journal_entries
		WHERE user_id = $1 AND deleted = FALSE
		ORDER BY created_at DESC;`

	updateEntry = `
		UPDATE journal_entries
		SET ciphertext = $1, search_index = $2, metadata = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6 AND deleted = FALSE;`

	updateAnalysis = `
		UPDATE journal_entries
		SET sentiment_score = $1, stress_index = $2, feedback = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6 AND deleted = FALSE;`

	setPinned = `
		UPDATE journal_entries
		SET pinned = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND deleted = FALSE;`

	softDeleteEntry = `
		UPDATE journal_entries
		SET deleted = TRUE, deleted_at = $1, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND deleted = FALSE;`

	// date() truncates to the calendar day on both backends.
	distinctEntryDates = `
		SELECT DISTINCT date(created_at) AS entry_date
		FROM journal_entries
		WHERE user_id = $1 AND deleted = FALSE
		ORDER BY entry_date DESC
		LIMIT $2;`

	unlockedAchievements = `
		SELECT user_id, achievement_id, unlocked_at
		FROM user_achievements
		WHERE user_id = $1
		ORDER BY unlocked_at;`

	insertUnlock = `
		INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
		VALUES ($1, $2, $3);`
)

var entryColumns = []string{
	"id",
	"user_id",
	"ciphertext",
	"search_index",
	"sentiment_score",
	"stress_index",
	"feedback",
	"pinned",
	"metadata",
	"created_at",
	"updated_at",
}

// buildSearchEntriesQuery dynamically builds the filtered SELECT. Zero-valued
// filter fields contribute no WHERE clause. Keyword and tag matching run over
// plaintext columns (the search-index prefix and the metadata JSON text), so
// they never touch ciphertext.
func buildSearchEntriesQuery(userID int64, filter models.EntryFilter) (string, []any, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := builder.
		Select(entryColumns...).
		From("journal_entries").
		Where(sq.Eq{"user_id": userID, "deleted": false})

	if filter.DateFrom != nil {
		query = query.Where(sq.GtOrEq{"created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(sq.LtOrEq{"created_at": *filter.DateTo})
	}
	if filter.SentimentMin != nil {
		query = query.Where(sq.GtOrEq{"sentiment_score": *filter.SentimentMin})
	}
	if filter.SentimentMax != nil {
		query = query.Where(sq.LtOrEq{"sentiment_score": *filter.SentimentMax})
	}
	if filter.StressMin != nil {
		query = query.Where(sq.GtOrEq{"stress_index": *filter.StressMin})
	}
	if filter.StressMax != nil {
		query = query.Where(sq.LtOrEq{"stress_index": *filter.StressMax})
	}
	if filter.Pinned != nil {
		query = query.Where(sq.Eq{"pinned": *filter.Pinned})
	}
	if filter.Tag != "" {
		// Tags live inside the metadata JSON as quoted strings.
		query = query.Where(sq.Like{"metadata": `%"` + filter.Tag + `"%`})
	}
	if filter.Keyword != "" {
		// LOWER on both sides keeps the match case-insensitive on SQLite,
		// which has no ILIKE.
		query = query.Where(
			sq.Expr("LOWER(search_index) LIKE ?", "%"+strings.ToLower(filter.Keyword)+"%"),
		)
	}

	query = query.OrderBy("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}
