// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package achievements

import "github.com/lumimood/moodcore/models"

// Achievement categories.
const (
	CategoryWriting     = "writing"
	CategoryConsistency = "consistency"
	CategoryMood        = "mood"
	CategorySocial      = "social"
	CategoryExplore     = "explore"
	CategoryWellness    = "wellness"
)

// Catalog is the full static achievement catalog. Order is stable and is
// the order progress reports are returned in. Immutable at runtime: the
// engine only ever reads it.
var Catalog = []models.AchievementDefinition{
	// Writing
	{ID: "first_note", Category: CategoryWriting, Icon: "pencil", Threshold: 1, NameKey: "achievement.first_note", DescKey: "achievement.first_note_desc"},
	{ID: "notes_10", Category: CategoryWriting, Icon: "notebook", Threshold: 10, NameKey: "achievement.notes_10", DescKey: "achievement.notes_10_desc"},
	{ID: "notes_50", Category: CategoryWriting, Icon: "books", Threshold: 50, NameKey: "achievement.notes_50", DescKey: "achievement.notes_50_desc"},
	{ID: "notes_100", Category: CategoryWriting, Icon: "trophy", Threshold: 100, NameKey: "achievement.notes_100", DescKey: "achievement.notes_100_desc"},
	{ID: "notes_200", Category: CategoryWriting, Icon: "medal", Threshold: 200, NameKey: "achievement.notes_200", DescKey: "achievement.notes_200_desc"},
	{ID: "long_writer", Category: CategoryWriting, Icon: "scroll", Threshold: 500, NameKey: "achievement.long_writer", DescKey: "achievement.long_writer_desc"},
	{ID: "first_image", Category: CategoryWriting, Icon: "camera", Threshold: 1, NameKey: "achievement.first_image", DescKey: "achievement.first_image_desc"},

	// Consistency
	{ID: "streak_3", Category: CategoryConsistency, Icon: "fire", Threshold: 3, NameKey: "achievement.streak_3", DescKey: "achievement.streak_3_desc"},
	{ID: "streak_7", Category: CategoryConsistency, Icon: "flame", Threshold: 7, NameKey: "achievement.streak_7", DescKey: "achievement.streak_7_desc"},
	{ID: "streak_30", Category: CategoryConsistency, Icon: "calendar", Threshold: 30, NameKey: "achievement.streak_30", DescKey: "achievement.streak_30_desc"},
	{ID: "weekend_warrior", Category: CategoryConsistency, Icon: "sparkles", Threshold: 1, NameKey: "achievement.weekend_warrior", DescKey: "achievement.weekend_warrior_desc"},
	{ID: "dedicated_months_3", Category: CategoryConsistency, Icon: "calendar_star", Threshold: 3, NameKey: "achievement.dedicated_months_3", DescKey: "achievement.dedicated_months_3_desc"},

	// Mood
	{ID: "mood_explorer", Category: CategoryMood, Icon: "compass", Threshold: 5, NameKey: "achievement.mood_explorer", DescKey: "achievement.mood_explorer_desc"},
	{ID: "positive_streak", Category: CategoryMood, Icon: "sun", Threshold: 3, NameKey: "achievement.positive_streak", DescKey: "achievement.positive_streak_desc"},
	{ID: "mood_improver", Category: CategoryMood, Icon: "trending_up", Threshold: 3, NameKey: "achievement.mood_improver", DescKey: "achievement.mood_improver_desc"},
	{ID: "self_aware", Category: CategoryMood, Icon: "brain", Threshold: 10, NameKey: "achievement.self_aware", DescKey: "achievement.self_aware_desc"},
	{ID: "stress_manager", Category: CategoryMood, Icon: "leaf", Threshold: 5, NameKey: "achievement.stress_manager", DescKey: "achievement.stress_manager_desc"},
	{ID: "emotional_range", Category: CategoryMood, Icon: "rainbow", Threshold: 2, NameKey: "achievement.emotional_range", DescKey: "achievement.emotional_range_desc"},

	// Social
	{ID: "first_share", Category: CategorySocial, Icon: "share", Threshold: 1, NameKey: "achievement.first_share", DescKey: "achievement.first_share_desc"},
	{ID: "first_booking", Category: CategorySocial, Icon: "calendar_check", Threshold: 1, NameKey: "achievement.first_booking", DescKey: "achievement.first_booking_desc"},
	{ID: "first_ai_chat", Category: CategorySocial, Icon: "robot", Threshold: 1, NameKey: "achievement.first_ai_chat", DescKey: "achievement.first_ai_chat_desc"},
	{ID: "ai_chat_10", Category: CategorySocial, Icon: "chat_dots", Threshold: 10, NameKey: "achievement.ai_chat_10", DescKey: "achievement.ai_chat_10_desc"},
	{ID: "conversation_starter", Category: CategorySocial, Icon: "handshake", Threshold: 1, NameKey: "achievement.conversation_starter", DescKey: "achievement.conversation_starter_desc"},
	{ID: "messages_50", Category: CategorySocial, Icon: "mailbox", Threshold: 50, NameKey: "achievement.messages_50", DescKey: "achievement.messages_50_desc"},

	// Explore
	{ID: "night_owl", Category: CategoryExplore, Icon: "moon", Threshold: 1, NameKey: "achievement.night_owl", DescKey: "achievement.night_owl_desc"},
	{ID: "early_bird", Category: CategoryExplore, Icon: "sunrise", Threshold: 1, NameKey: "achievement.early_bird", DescKey: "achievement.early_bird_desc"},
	{ID: "pin_master", Category: CategoryExplore, Icon: "pin", Threshold: 5, NameKey: "achievement.pin_master", DescKey: "achievement.pin_master_desc"},
	{ID: "tag_collector", Category: CategoryExplore, Icon: "tags", Threshold: 10, NameKey: "achievement.tag_collector", DescKey: "achievement.tag_collector_desc"},
	{ID: "weather_logger", Category: CategoryExplore, Icon: "cloud_sun", Threshold: 5, NameKey: "achievement.weather_logger", DescKey: "achievement.weather_logger_desc"},

	// Wellness
	{ID: "feedback_giver", Category: CategoryWellness, Icon: "heart", Threshold: 1, NameKey: "achievement.feedback_giver", DescKey: "achievement.feedback_giver_desc"},
}
