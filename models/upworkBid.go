package models

import "time"

// UpworkBid là một bid trên Upwork, trạng thái pipeline nằm trong Status
type UpworkBid struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	User              User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user"`
	BidDate           time.Time `gorm:"type:date;not null" json:"bid_date"`
	ClientName        string    `gorm:"not null" json:"client_name"`
	Country           string    `gorm:"type:varchar(2);not null" json:"country"`
	TotalSpent        float64   `gorm:"type:decimal(10,2);not null;default:0" json:"total_spent"`
	AverageHourlyRate float64   `gorm:"type:decimal(10,2);not null;default:0" json:"average_hourly_rate"`
	SpentBidAmount    float64   `gorm:"type:decimal(10,2);not null;default:0" json:"spent_bid_amount"`
	AccountName       string    `gorm:"not null" json:"account_name"`
	Status            string    `gorm:"type:varchar(15);not null;default:'sent'" json:"status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
