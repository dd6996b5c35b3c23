// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package store

import (
	"database/sql"

	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/migrations"
)

// Supported database dialects. The dialect is fixed at connect time and
// selects the goose dialect plus driver-specific error classification.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// DB wraps the pooled connection together with its dialect. Both repository
// implementations share it; the SQL text is written to run unchanged on
// PostgreSQL and SQLite.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
