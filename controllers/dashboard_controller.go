package controllers

import (
	"time"

	"biztrack/response"
	"biztrack/services"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard *services.DashboardService
	bidStats  *services.BidStatsService
}

func NewDashboardController(dashboard *services.DashboardService, bidStats *services.BidStatsService) *DashboardController {
	return &DashboardController{dashboard: dashboard, bidStats: bidStats}
}

// GetStats trả về KPI tháng hiện tại của dashboard
func (ctl *DashboardController) GetStats(c *gin.Context) {
	stats, err := ctl.dashboard.Stats(time.Now().UTC())
	if err != nil {
		response.ServerError(c, "Failed to compute dashboard stats")
		return
	}
	response.Success(c, stats)
}

// GetWeeklyBids gom số liệu bid theo cửa sổ startDate/endDate,
// mặc định là tuần hiện tại
func (ctl *DashboardController) GetWeeklyBids(c *gin.Context) {
	start, end := services.WeeklyWindow(time.Now().UTC())

	if startParam := c.Query("startDate"); startParam != "" {
		parsed, err := validator.ParseDate(startParam)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		start = parsed
	}
	if endParam := c.Query("endDate"); endParam != "" {
		parsed, err := validator.ParseDate(endParam)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		end = parsed
	}

	if end.Before(start) {
		response.BadRequest(c, "endDate must not be before startDate")
		return
	}

	stats, err := ctl.bidStats.Aggregate(start, end)
	if err != nil {
		response.ServerError(c, "Failed to aggregate bid stats")
		return
	}
	response.Success(c, stats)
}
