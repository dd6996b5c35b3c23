// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumimood/moodcore/internal/config"
	"github.com/lumimood/moodcore/internal/logger"
)

// Storages bundles the repository set behind one constructor.
type Storages struct {
	DB                    *DB
	EntryRepository       EntryRepository
	AchievementRepository AchievementRepository
}

// NewStorages connects to the database named by the DSN, runs pending
// migrations and wires the repositories. A postgres:// or postgresql:// DSN
// selects PostgreSQL; anything else is treated as a SQLite file path
// (or ":memory:").
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if strings.HasPrefix(cfg.DB.DSN, "postgres://") || strings.HasPrefix(cfg.DB.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("migration failed")
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DB:                    db,
		EntryRepository:       NewEntryRepository(db, log),
		AchievementRepository: NewAchievementRepository(db, log),
	}, nil
}
