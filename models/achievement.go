// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package models

import "time"

// AchievementDefinition is one immutable entry of the static achievement
// catalog. ID is the stable identifier persisted in unlock rows; NameKey and
// DescKey are i18n lookup keys resolved by the presentation layer.
type AchievementDefinition struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Icon      string `json:"icon"`
	Threshold int    `json:"threshold"`
	NameKey   string `json:"name_key"`
	DescKey   string `json:"desc_key"`
}

// UnlockedAchievement is one (user, achievement) unlock row. The pair is
// unique in storage and created exactly once; unlocking is one-way.
type UnlockedAchievement struct {
	UserID        int64     `json:"user_id" db:"user_id"`
	AchievementID string    `json:"achievement_id" db:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at" db:"unlocked_at"`
}

// AchievementProgress is the read-only per-catalog-entry status reported to
// the UI. Current is clamped so it never exceeds Threshold.
type AchievementProgress struct {
	AchievementDefinition
	Current    int        `json:"current"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// Activity is the snapshot of collaborator-owned counters the surrounding
// application passes into an achievement check. Entry-derived metrics
// (note counts, streaks, mood buckets, ...) are computed by the engine
// itself from the entry store; these counters belong to subsystems outside
// this library (messaging, bookings, uploads) and arrive pre-aggregated.
type Activity struct {
	ShareCount        int `json:"share_count"`
	BookingCount      int `json:"booking_count"`
	ChatSessionCount  int `json:"chat_session_count"`
	ConversationCount int `json:"conversation_count"`
	MessageCount      int `json:"message_count"`
	FeedbackCount     int `json:"feedback_count"`
	ImageCount        int `json:"image_count"`
}
