package controller

import (
	"errors"
	"strings"

	"uni_archive_backend/internal/service"
	"uni_archive_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AI *service.AIService
}

func NewAIController(ai *service.AIService) *AIController {
	return &AIController{AI: ai}
}

type askRequest struct {
	Query string `json:"query"`
}

// Ask godoc
// @Summary Ask the study assistant
// @Description Forward a question to the configured LLM provider
// @Tags ai
// @Accept json
// @Produce json
// @Param request body askRequest true "Question"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 502 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /ai/ask [post]
func (c *AIController) Ask(ctx *gin.Context) {
	var req askRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		util.BadRequest(ctx, "Query is required")
		return
	}

	answer, err := c.AI.Ask(ctx.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, util.ErrUpstream) {
			util.BadGateway(ctx, "AI provider unavailable")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"answer": answer})
}
