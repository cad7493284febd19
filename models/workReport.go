package models

import "time"

type WorkReport struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_user_report_date" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user"`
	ReportDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_report_date" json:"report_date"`
	WorkingHours float64   `gorm:"type:decimal(4,2);not null" json:"working_hours"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
