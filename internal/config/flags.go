// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package config

import (
	"flag"
	"time"
)

// ParseFlags parses configuration flags from args using the supplied
// FlagSet (pass flag.CommandLine and os.Args[1:] in production; tests pass
// a private FlagSet).
//
// Flags:
//
//	-d database DSN
//	-encryption-keys comma-separated encryption key ring
//	-key-derivation-salt salt for passphrase-derived keys
//	-openai-api-key remote analysis tier API key
//	-openai-model remote analysis tier model name
//	-openai-base-url remote analysis tier endpoint override
//	-analysis-timeout remote analysis call timeout (e.g., "15s")
//	-kb-base-url knowledge-base retrieval service URL
//	-kb-top-k documents per retrieval query
//	-kb-timeout retrieval call timeout (e.g., "5s")
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var encryptionKeys string
	var keyDerivationSalt string
	var openAIAPIKey string
	var openAIModel string
	var openAIBaseURL string
	var analysisTimeout time.Duration
	var kbBaseURL string
	var kbTopK int
	var kbTimeout time.Duration
	var jsonConfigPath string

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&encryptionKeys, "encryption-keys", "", "Comma-separated encryption key ring")
	fs.StringVar(&keyDerivationSalt, "key-derivation-salt", "", "Salt for passphrase-derived keys")
	fs.StringVar(&openAIAPIKey, "openai-api-key", "", "Remote analysis tier API key")
	fs.StringVar(&openAIModel, "openai-model", "", "Remote analysis tier model name")
	fs.StringVar(&openAIBaseURL, "openai-base-url", "", "Remote analysis tier endpoint override")
	fs.DurationVar(&analysisTimeout, "analysis-timeout", 0, "Remote analysis call timeout (e.g., 15s)")
	fs.StringVar(&kbBaseURL, "kb-base-url", "", "Knowledge-base retrieval service URL")
	fs.IntVar(&kbTopK, "kb-top-k", 0, "Documents per retrieval query")
	fs.DurationVar(&kbTimeout, "kb-timeout", 0, "Retrieval call timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			EncryptionKeys:    encryptionKeys,
			KeyDerivationSalt: keyDerivationSalt,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Analysis: Analysis{
			OpenAIAPIKey:   openAIAPIKey,
			OpenAIModel:    openAIModel,
			OpenAIBaseURL:  openAIBaseURL,
			RequestTimeout: analysisTimeout,
		},
		KB: KnowledgeBase{
			BaseURL:        kbBaseURL,
			TopK:           kbTopK,
			RequestTimeout: kbTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
