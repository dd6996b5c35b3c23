// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package service

import (
	"github.com/lumimood/moodcore/internal/achievements"
	"github.com/lumimood/moodcore/internal/analysis"
	"github.com/lumimood/moodcore/internal/chat"
	"github.com/lumimood/moodcore/internal/config"
	"github.com/lumimood/moodcore/internal/crypto"
	"github.com/lumimood/moodcore/internal/kb"
	"github.com/lumimood/moodcore/internal/llm"
	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/internal/store"
	"github.com/lumimood/moodcore/internal/validators"
)

type Services struct {
	JournalService JournalService
	ChatCompanion  *chat.Companion
	Achievements   *achievements.Engine
	Encryption     *crypto.EncryptionService
}

// NewServices wires the full collaborator graph: encryption, the analysis
// tier ladder (with optional knowledge-base retrieval), the chat companion
// and the achievement engine, all over the given storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	encryption, err := crypto.NewEncryptionService(cfg.EncryptionKeyList(), cfg.App.KeyDerivationSalt, log)
	if err != nil {
		return nil, err
	}

	completer := llm.NewCompleter(cfg.Analysis, log)

	// The typed-nil guard matters: assigning a nil *kb.Client straight into
	// the interface would make the retriever non-nil and panic on use.
	var retriever analysis.Retriever
	if kbClient := kb.NewClient(cfg.KB, log); kbClient != nil {
		retriever = kbClient
	}

	analyzer := analysis.NewAnalyzer(completer, retriever, log)
	engine := achievements.NewEngine(storages.EntryRepository, storages.AchievementRepository, encryption, log)
	validator := validators.NewMetadataValidator()

	return &Services{
		JournalService: NewJournalService(storages.EntryRepository, encryption, analyzer, engine, validator, log),
		ChatCompanion:  chat.NewCompanion(completer, log),
		Achievements:   engine,
		Encryption:     encryption,
	}, nil
}
