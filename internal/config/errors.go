// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoEncryptionKeys indicates that no encryption key is configured.
	// This is fatal at startup: running with a generated ephemeral key
	// would make stored journal content unrecoverable after a restart.
	ErrNoEncryptionKeys = errors.New("no encryption keys configured")
	// ErrInvalidKBConfigs indicates invalid knowledge-base retrieval
	// settings (for example, a negative top-k).
	ErrInvalidKBConfigs = errors.New("invalid knowledge base configuration")
)
