// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package config

import (
	"flag"
	"os"
	"time"
)

// EnvPrefix is prepended to every environment variable the library reads,
// so a surrounding application can namespace moodcore settings (e.g.
// MOODCORE_APP_ENCRYPTION_KEYS).
const EnvPrefix = "MOODCORE_"

// StructuredConfig is the top-level configuration container for moodcore.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings, most importantly the
	// encryption key ring. Missing keys are a fatal configuration error.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Analysis holds the remote LLM tier settings. An empty API key means
	// the remote tier is unavailable and analysis runs on the local tier.
	Analysis Analysis `envPrefix:"ANALYSIS_"`

	// KB holds the optional knowledge-base retrieval service settings.
	// An empty base URL degrades feedback to the personalized path.
	KB KnowledgeBase `envPrefix:"KB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the MOODCORE_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// EncryptionKeys is the comma-separated key ring for journal content
	// encryption. The first key encrypts all new content; every key is
	// tried during decryption, which makes rotation a matter of
	// prepending a new key. Each element is either a URL-safe base64
	// 32-byte fernet key or an arbitrary passphrase (stretched via
	// Argon2id with KeyDerivationSalt).
	// Env: MOODCORE_APP_ENCRYPTION_KEYS
	EncryptionKeys string `env:"ENCRYPTION_KEYS"`

	// KeyDerivationSalt is the deployment-wide salt used when an element
	// of EncryptionKeys is a passphrase rather than a raw fernet key.
	// It must stay stable across restarts or passphrase-derived keys
	// change and old content becomes unreadable.
	// Env: MOODCORE_APP_KEY_DERIVATION_SALT
	KeyDerivationSalt string `env:"KEY_DERIVATION_SALT"`

	// Version is the semantic version string of the running application.
	// Env: MOODCORE_APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the entry/achievement database.
type DB struct {
	// DSN is the data source name. A "postgres://" DSN selects the
	// PostgreSQL backend (pgx driver); anything else is treated as a
	// SQLite file path for embedded deployments.
	// Env: MOODCORE_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Analysis holds settings for the remote sentiment/feedback tier.
type Analysis struct {
	// OpenAIAPIKey authenticates remote completion calls. Empty means
	// "tier unavailable", which is not an error: analysis falls through
	// to the deterministic local tier.
	// Env: MOODCORE_ANALYSIS_OPENAI_API_KEY
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	// OpenAIModel is the completion model name (e.g. "gpt-4o-mini").
	// Env: MOODCORE_ANALYSIS_OPENAI_MODEL
	OpenAIModel string `env:"OPENAI_MODEL"`

	// OpenAIBaseURL optionally overrides the API endpoint; used by tests
	// and by gateway deployments.
	// Env: MOODCORE_ANALYSIS_OPENAI_BASE_URL
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// RequestTimeout bounds a single remote-tier call. A timeout is
	// treated exactly like any other tier failure (fall through).
	// Env: MOODCORE_ANALYSIS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// KnowledgeBase holds settings for the optional retrieval collaborator
// backing RAG feedback.
type KnowledgeBase struct {
	// BaseURL is the root of the retrieval HTTP service. Empty means the
	// knowledge base is absent and RAG degrades to personalized feedback.
	// Env: MOODCORE_KB_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// TopK is the number of documents requested per retrieval query.
	// Env: MOODCORE_KB_TOP_K
	TopK int `env:"TOP_K"`

	// RequestTimeout bounds a single retrieval call.
	// Env: MOODCORE_KB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig assembles the final configuration by layering
// environment variables, command-line flags, and (when referenced) a JSON
// file, then validating the merged result.
//
// Precedence follows merge order: values set by an earlier layer win, so
// environment variables override flags, which override the JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flag.CommandLine, os.Args[1:]).
		withJSON().
		build()
}
