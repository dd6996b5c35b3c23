// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package models

// Chat message roles, matching the remote completion API's vocabulary.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of an AI companion conversation. The session
// itself (ownership, persistence) belongs to the surrounding application;
// this library only consumes an ordered history slice.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
