package controller

import (
	"uni_archive_backend/internal/service"
	"uni_archive_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats *service.StatsService
}

func NewStatsController(stats *service.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Per-course coverage stats plus the five busiest slots
// @Tags stats
// @Produce json
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Failure 500 {object} util.Response
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	stats, err := c.Stats.GetDashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
