// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchIndexLimit is the maximum number of plaintext characters (runes)
// persisted unencrypted alongside an entry for substring search. Everything
// beyond the prefix exists only inside the ciphertext.
const SearchIndexLimit = 500

// JournalEntry is a single journal record owned by exactly one user.
//
// Content is stored as an authenticated ciphertext token and is never
// readable outside the crypto service. SentimentScore and StressIndex are
// set atomically by one analysis pass: either both are present or both are
// nil. SearchIndex holds an unencrypted plaintext prefix (at most
// [SearchIndexLimit] runes) used for substring filtering.
type JournalEntry struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	Ciphertext  string     `json:"-" db:"ciphertext"`
	SearchIndex string     `json:"-" db:"search_index"`

	// Content carries decrypted plaintext in memory only. It is populated
	// by the service layer after decryption and is never persisted.
	Content string `json:"content" db:"-"`

	SentimentScore *float64 `json:"sentiment_score" db:"sentiment_score"`
	StressIndex    *int     `json:"stress_index" db:"stress_index"`
	Feedback       string   `json:"feedback" db:"feedback"`

	Pinned    bool       `json:"pinned" db:"pinned"`
	Deleted   bool       `json:"-" db:"deleted"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`

	Metadata Metadata `json:"metadata" db:"metadata"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Scored reports whether the entry carries analysis results.
func (e *JournalEntry) Scored() bool {
	return e.SentimentScore != nil && e.StressIndex != nil
}

// EntryFilter is the structured search input for listing entries.
// Zero-valued fields are ignored; Keyword matches the unencrypted
// search-index prefix as a case-insensitive substring.
type EntryFilter struct {
	DateFrom     *time.Time
	DateTo       *time.Time
	SentimentMin *float64
	SentimentMax *float64
	StressMin    *int
	StressMax    *int
	Tag          string
	Pinned       *bool
	Keyword      string
	Limit        uint64
}
