// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package models

// Alert types emitted by the detector. All three rules are evaluated
// independently and may fire in the same call.
const (
	AlertConsecutiveNegative = "consecutive_negative"
	AlertHighStress          = "high_stress"
	AlertSuddenDrop          = "sudden_drop"
)

// Alert severities.
const (
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alert is a derived, non-persisted signal indicating a risky mood pattern.
// It is computed on demand from the entry history and discarded after the
// response; nothing about it is stored.
type Alert struct {
	Type     string         `json:"type"`
	Severity string         `json:"severity"`
	Data     map[string]any `json:"data"`
}
