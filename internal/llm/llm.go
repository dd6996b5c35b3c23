// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package llm defines the remote-completion collaborator boundary used by
// the analysis and chat packages, and its OpenAI-backed implementation.
//
// Absence of configuration (no API key) is modeled as a nil [Completer],
// which callers treat as "tier unavailable", never as an error.
package llm

import (
	"context"
	"errors"
)

// Message roles accepted by [Request].
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn. ImageURLs, when non-empty on a user
// message, turns the message into a multimodal content block (vision).
type Message struct {
	Role      string
	Content   string
	ImageURLs []string
}

// Request describes a single completion call.
type Request struct {
	Messages    []Message
	MaxTokens   int64
	Temperature float64
}

// ErrEmptyCompletion is returned when the model replies with no usable
// text. Callers treat it like any other tier failure.
var ErrEmptyCompletion = errors.New("empty completion response")

// Completer is the remote-LLM collaborator contract: one blocking call that
// turns a message list into text. Implementations must honor ctx
// cancellation; callers bound every call with a timeout and treat timeout
// as tier failure.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
