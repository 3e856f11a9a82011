package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"uni_archive_backend/internal/config"
	"uni_archive_backend/internal/util"
)

// AIService proxies student questions to a chat-completions endpoint. When
// no API key is configured it answers in an explicit simulated mode instead
// of failing, so the feature degrades visibly rather than silently.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Configured() bool {
	return s.config.APIKey != ""
}

// Ask sends the query upstream with a bounded timeout. Upstream failures
// (non-200, timeout, connection errors) wrap util.ErrUpstream so the
// boundary can map them to 502.
func (s *AIService) Ask(ctx context.Context, query string) (string, error) {
	if !s.Configured() {
		return fmt.Sprintf(
			"AI Config Missing: set AI_API_KEY to enable live answers. (Simulated Response: the backend received your query %q)",
			query,
		), nil
	}

	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "user", Content: query},
		},
		Temperature: 0.5,
		MaxTokens:   1024,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", util.ErrUpstream, resp.StatusCode, truncate(string(body), 200))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", util.ErrUpstream, err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", util.ErrUpstream)
	}

	answer := result.Choices[0].Message.Content
	if answer == "" {
		answer = "No response content from AI."
	}
	return answer, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
