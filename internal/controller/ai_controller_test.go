package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uni_archive_backend/internal/config"
	"uni_archive_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAIRouter(cfg config.AIConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/ai/ask", NewAIController(service.NewAIService(cfg)).Ask)
	return router
}

func TestAskRequiresQuery(t *testing.T) {
	router := newAIRouter(config.AIConfig{TimeoutSeconds: 5})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/ask", strings.NewReader(`{"query":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskUnconfiguredStillAnswers(t *testing.T) {
	router := newAIRouter(config.AIConfig{TimeoutSeconds: 5})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/ask", strings.NewReader(`{"query":"what is recursion?"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Simulated Response")
}

func TestAskUpstreamFailureIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	router := newAIRouter(config.AIConfig{
		BaseURL:        upstream.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/ask", strings.NewReader(`{"query":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
