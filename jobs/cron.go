package jobs

import (
	"time"

	"biztrack/services"
	"biztrack/services/notification"
	"biztrack/utils"

	"github.com/robfig/cron/v3"
)

// InitCronJobs đăng ký job tổng kết bid lúc nửa đêm
func InitCronJobs(c *cron.Cron, bidStats *services.BidStatsService, notifier notification.Service) error {
	if _, err := c.AddFunc("0 0 * * *", func() {
		broadcastDailySummary(bidStats, notifier)
	}); err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs started")
	return nil
}

// broadcastDailySummary gom số liệu bid của ngày hôm trước và broadcast lên websocket
func broadcastDailySummary(bidStats *services.BidStatsService, notifier notification.Service) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	stats, err := bidStats.Aggregate(yesterday, yesterday)
	if err != nil {
		utils.LogError("Failed to aggregate daily bid summary: %v", err)
		return
	}

	date := yesterday.Format("2006-01-02")
	freelancerSent := sumSent(stats.Freelancer, date)
	upworkSent := sumSent(stats.Upwork, date)

	message := notification.NewSummaryMessageBuilder(date, freelancerSent, upworkSent).Build()
	if err := notifier.SendMessage(message); err != nil {
		utils.LogError("Failed to broadcast daily bid summary: %v", err)
	}
}

func sumSent(stats services.PlatformStats, date string) int {
	total := 0
	for _, days := range stats {
		if day, ok := days[date]; ok {
			total += day.Sent
		}
	}
	return total
}
