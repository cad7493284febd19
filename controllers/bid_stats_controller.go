package controllers

import (
	"time"

	"biztrack/response"
	"biztrack/services"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
)

type BidStatsController struct {
	bidStats *services.BidStatsService
}

func NewBidStatsController(bidStats *services.BidStatsService) *BidStatsController {
	return &BidStatsController{bidStats: bidStats}
}

// GetWeeklyStats gom số liệu bid theo tuần Mon–Sun chứa ngày truyền vào,
// mặc định là hôm nay
func (ctl *BidStatsController) GetWeeklyStats(c *gin.Context) {
	anchor := time.Now().UTC()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := validator.ParseDate(dateParam)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		anchor = parsed
	}

	start, end := services.WeeklyWindow(anchor)
	stats, err := ctl.bidStats.Aggregate(start, end)
	if err != nil {
		response.ServerError(c, "Failed to aggregate bid stats")
		return
	}
	response.Success(c, stats)
}
