// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package config

import "strings"

// Defaults applied after merging when the corresponding value is unset.
const (
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultAnalysisTimeout = "15s"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the core refuses to run without.
//
// Journal content is unrecoverable if it is ever encrypted under a key that
// does not survive a restart, so an empty key ring is a hard startup error
// rather than a warning (no silent ephemeral-key fallback).
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.EncryptionKeys) == "" {
		return ErrNoEncryptionKeys
	}

	if cfg.KB.TopK < 0 {
		return ErrInvalidKBConfigs
	}

	return nil
}

// EncryptionKeyList splits the configured comma-separated key ring into
// individual key strings, trimming whitespace and dropping empty elements.
// The first element is the primary (encrypting) key.
func (cfg *StructuredConfig) EncryptionKeyList() []string {
	parts := strings.Split(cfg.App.EncryptionKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
