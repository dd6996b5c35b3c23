// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned when a query or update targets a journal
	// entry (identified by id and user_id) that does not exist or has been
	// soft-deleted.
	ErrEntryNotFound = errors.New("journal entry was not found")

	// ErrEntryNotSaved is returned when an INSERT of an entry completes
	// without error but the number of affected rows is zero, indicating
	// that nothing was actually persisted.
	ErrEntryNotSaved = errors.New("journal entry was not saved")

	// ErrAlreadyUnlocked is returned when an achievement unlock insert hits
	// the (user_id, achievement_id) uniqueness constraint. The unlock state
	// machine is one-way, so callers treat this as success.
	ErrAlreadyUnlocked = errors.New("achievement already unlocked")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan entry row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan entry rows")
)
