// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// moodcore is the development binary: it boots the full service graph,
// reads journal text from stdin, runs it through the analysis pipeline and
// prints the stored entry (with alerts and overview) as JSON.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lumimood/moodcore/internal/config"
	"github.com/lumimood/moodcore/internal/logger"
	"github.com/lumimood/moodcore/internal/service"
	"github.com/lumimood/moodcore/internal/store"
	"github.com/lumimood/moodcore/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const demoUserID int64 = 1

func main() {
	printBuildInfo()

	log := logger.NewLogger("moodcore")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	content, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		log.Fatal().Err(err).Msg("error reading stdin")
	}

	entry, err := services.JournalService.CreateEntry(ctx, demoUserID, string(content), models.Metadata{})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating entry")
	}

	alerts, err := services.JournalService.Alerts(ctx, demoUserID)
	if err != nil {
		log.Fatal().Err(err).Msg("error detecting alerts")
	}

	overview, err := services.JournalService.Overview(ctx, demoUserID)
	if err != nil {
		log.Fatal().Err(err).Msg("error building overview")
	}

	out := map[string]any{
		"entry":    entry,
		"alerts":   alerts,
		"overview": overview,
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding result")
	}
	fmt.Println(string(encoded))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
