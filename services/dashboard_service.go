package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"biztrack/constants"
	"biztrack/models"
	"biztrack/services/logger"

	"gorm.io/gorm"
)

// DashboardStats là bộ KPI của tháng hiện tại
type DashboardStats struct {
	TotalUsers      int64   `json:"totalUsers"`
	MonthlyPlan     float64 `json:"monthlyPlan"`
	MonthlyProgress int     `json:"monthlyProgress"`
	TopUser         string  `json:"topUser"`
}

type DashboardService struct {
	db     *gorm.DB
	logger logger.Logger
}

type DashboardServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &DashboardService{db: opts.DB, logger: opts.Logger}
}

// MonthWindow trả về [ngày đầu tháng, ngày đầu tháng sau) của now
func MonthWindow(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first, first.AddDate(0, 1, 0)
}

// monthTargetHours tính tổng giờ mục tiêu của tháng: Chủ Nhật tính theo
// weekend target, mọi ngày khác (kể cả Thứ Bảy) tính theo weekday target.
func monthTargetHours(first, next time.Time, weekday, weekend float64) float64 {
	var total float64
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			total += weekend
		} else {
			total += weekday
		}
	}
	return total
}

// Stats tính KPI dashboard cho tháng lịch chứa now
func (s *DashboardService) Stats(now time.Time) (*DashboardStats, error) {
	first, next := MonthWindow(now)

	var totalUsers int64
	if err := s.db.Model(&models.User{}).
		Where("role <> ?", constants.RoleAdmin).
		Count(&totalUsers).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	var monthlyPlan float64
	if err := s.db.Model(&models.User{}).
		Where("role <> ?", constants.RoleAdmin).
		Select("COALESCE(SUM(target_money), 0)").
		Scan(&monthlyPlan).Error; err != nil {
		return nil, fmt.Errorf("sum target money: %w", err)
	}

	// Người log nhiều giờ nhất trong tháng, hòa thì xếp theo tên
	var top struct {
		Name       string
		TotalHours float64
	}
	err := s.db.Table("work_reports r").
		Select("u.name AS name, SUM(r.working_hours) AS total_hours").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("u.role <> ? AND r.report_date >= ? AND r.report_date < ?", constants.RoleAdmin, first, next).
		Group("u.id, u.name").
		Order("total_hours DESC, u.name ASC").
		Limit(1).
		Scan(&top).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("top performer: %w", err)
	}

	topUser := top.Name
	if topUser == "" {
		topUser = "N/A"
	}

	var totalHours float64
	if err := s.db.Model(&models.WorkReport{}).
		Where("report_date >= ? AND report_date < ?", first, next).
		Select("COALESCE(SUM(working_hours), 0)").
		Scan(&totalHours).Error; err != nil {
		return nil, fmt.Errorf("sum working hours: %w", err)
	}

	weekdayTarget := constants.DefaultWeekdayTarget
	weekendTarget := constants.DefaultWeekendTarget
	var target models.TargetWorkingTime
	if err := s.db.First(&target).Error; err == nil {
		weekdayTarget = target.WeekdayTarget
		weekendTarget = target.WeekendTarget
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load target times: %w", err)
	}

	progress := 0
	if denom := monthTargetHours(first, next, weekdayTarget, weekendTarget); denom > 0 {
		progress = int(math.Round(totalHours / denom * 100))
	}

	return &DashboardStats{
		TotalUsers:      totalUsers,
		MonthlyPlan:     monthlyPlan,
		MonthlyProgress: progress,
		TopUser:         topUser,
	}, nil
}
