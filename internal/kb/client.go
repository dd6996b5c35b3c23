// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package kb implements the knowledge-base retrieval collaborator: an HTTP
// client for the psychology document search service that backs
// retrieval-grounded feedback.
//
// The knowledge base is strictly optional. A client built without a base
// URL is nil, and every failure mode (unreachable service, empty index)
// surfaces as "no documents" so the feedback pipeline can degrade to its
// personalized path.
package kb

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lumimood/moodcore/internal/config"
	"github.com/lumimood/moodcore/internal/logger"
)

const (
	defaultTopK    = 3
	defaultTimeout = 5 * time.Second
)

// Client queries the retrieval service. All state is read-only after
// construction; Client is safe for concurrent use.
type Client struct {
	client *resty.Client
	topK   int
	logger *logger.Logger
}

type queryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type queryResponse struct {
	Documents []struct {
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"documents"`
}

// NewClient builds a retrieval client from configuration. Returns nil when
// no base URL is configured: the knowledge base is absent, not broken.
func NewClient(cfg config.KnowledgeBase, log *logger.Logger) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		log.Info().Msg("no knowledge base configured, retrieval unavailable")
		return nil
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	topK := cfg.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &Client{client: cli, topK: topK, logger: log}
}

// Retrieve returns the contents of the top matching documents for query.
// An empty result is a valid answer (empty index or no matches), and the
// caller is expected to degrade gracefully either way.
func (c *Client) Retrieve(ctx context.Context, query string) ([]string, error) {
	var parsed queryResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(queryRequest{Query: query, TopK: c.topK}).
		SetResult(&parsed).
		Post("/query")
	if err != nil {
		return nil, fmt.Errorf("knowledge base query: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("knowledge base query: unexpected status %d", resp.StatusCode())
	}

	docs := make([]string, 0, len(parsed.Documents))
	for _, d := range parsed.Documents {
		if d.Content != "" {
			docs = append(docs, d.Content)
		}
	}

	if len(docs) == 0 {
		c.logger.Info().Msg("knowledge base returned no documents")
	}
	return docs, nil
}
