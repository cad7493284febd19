package models

import "time"

// FreelancerBid là một lượt gửi bid trên Freelancer trong một ngày,
// BidNumber là số proposal gửi trong lượt đó.
type FreelancerBid struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user"`
	Skill     string    `gorm:"not null" json:"skill"`
	BidNumber int       `gorm:"not null" json:"bid_number"`
	BidDate   time.Time `gorm:"type:date;not null" json:"bid_date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
