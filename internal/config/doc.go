// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package config assembles moodcore configuration from three layered
// sources (environment variables, command-line flags, and an optional JSON
// file) merged in that order of precedence and validated before use.
//
// All configuration is read once at startup; the resulting
// [StructuredConfig] is treated as immutable afterwards.
package config
