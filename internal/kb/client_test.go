// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package kb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumimood/moodcore/internal/config"
	"github.com/lumimood/moodcore/internal/logger"
)

func TestNewClient_NoBaseURL(t *testing.T) {
	assert.Nil(t, NewClient(config.KnowledgeBase{}, logger.Nop()))
	assert.Nil(t, NewClient(config.KnowledgeBase{BaseURL: "   "}, logger.Nop()))
}

func TestRetrieve(t *testing.T) {
	var gotReq queryRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/query", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"documents": []map[string]any{
				{"content": "grounding techniques for acute anxiety", "score": 0.91},
				{"content": "", "score": 0.40},
				{"content": "sleep hygiene basics", "score": 0.32},
			},
		})
	}))
	defer server.Close()

	client := NewClient(config.KnowledgeBase{
		BaseURL:        server.URL,
		TopK:           5,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NotNil(t, client)

	docs, err := client.Retrieve(context.Background(), "feeling anxious")
	require.NoError(t, err)

	// Empty-content documents are dropped.
	assert.Equal(t, []string{
		"grounding techniques for acute anxiety",
		"sleep hygiene basics",
	}, docs)
	assert.Equal(t, "feeling anxious", gotReq.Query)
	assert.Equal(t, 5, gotReq.TopK)
}

func TestRetrieve_DefaultTopK(t *testing.T) {
	var gotReq queryRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents": []}`))
	}))
	defer server.Close()

	client := NewClient(config.KnowledgeBase{BaseURL: server.URL}, logger.Nop())
	require.NotNil(t, client)

	docs, err := client.Retrieve(context.Background(), "query")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, defaultTopK, gotReq.TopK)
}

func TestRetrieve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "index rebuilding", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(config.KnowledgeBase{BaseURL: server.URL}, logger.Nop())
	require.NotNil(t, client)

	_, err := client.Retrieve(context.Background(), "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}

func TestRetrieve_Unreachable(t *testing.T) {
	client := NewClient(config.KnowledgeBase{
		BaseURL:        "http://127.0.0.1:1",
		RequestTimeout: 200 * time.Millisecond,
	}, logger.Nop())
	require.NotNil(t, client)

	_, err := client.Retrieve(context.Background(), "query")
	assert.Error(t, err)
}
