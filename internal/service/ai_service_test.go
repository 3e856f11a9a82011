package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"uni_archive_backend/internal/config"
	"uni_archive_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskUnconfiguredReturnsSimulatedAnswer(t *testing.T) {
	ai := NewAIService(config.AIConfig{TimeoutSeconds: 5})

	answer, err := ai.Ask(context.Background(), "what is a B-tree?")
	require.NoError(t, err)
	assert.Contains(t, answer, "Simulated Response")
	assert.Contains(t, answer, "what is a B-tree?")
}

func TestAskForwardsToProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"A balanced tree."}}]}`))
	}))
	defer server.Close()

	ai := NewAIService(config.AIConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		Model:          "test-model",
		TimeoutSeconds: 5,
	})

	answer, err := ai.Ask(context.Background(), "what is a B-tree?")
	require.NoError(t, err)
	assert.Equal(t, "A balanced tree.", answer)
}

func TestAskUpstreamErrorWrapsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	ai := NewAIService(config.AIConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
	})

	_, err := ai.Ask(context.Background(), "query")
	assert.ErrorIs(t, err, util.ErrUpstream)
}

func TestAskNoChoicesIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	ai := NewAIService(config.AIConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
	})

	_, err := ai.Ask(context.Background(), "query")
	assert.ErrorIs(t, err, util.ErrUpstream)
}

func TestAskConnectionRefusedIsUpstreamError(t *testing.T) {
	ai := NewAIService(config.AIConfig{
		BaseURL:        "http://127.0.0.1:1",
		APIKey:         "test-key",
		TimeoutSeconds: 1,
	})

	_, err := ai.Ask(context.Background(), "query")
	assert.ErrorIs(t, err, util.ErrUpstream)
}
