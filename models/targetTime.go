package models

import "time"

// TargetWorkingTime giữ mức giờ mục tiêu mỗi ngày, chỉ có một row
type TargetWorkingTime struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WeekdayTarget float64   `gorm:"type:decimal(4,2);default:16.00" json:"weekday_target"`
	WeekendTarget float64   `gorm:"type:decimal(4,2);default:8.00" json:"weekend_target"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	UpdatedBy     *uint     `json:"updated_by,omitempty"`
}
