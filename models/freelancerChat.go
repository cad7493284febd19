package models

import "time"

// FreelancerChat là một thread trao đổi với client, IsAwarded đánh dấu đã thắng contract
type FreelancerChat struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user"`
	ClientName    string    `gorm:"not null" json:"client_name"`
	ClientCountry string    `gorm:"not null" json:"client_country"`
	ProjectTitle  string    `gorm:"not null" json:"project_title"`
	Review        float64   `gorm:"type:decimal(3,1);not null;default:0" json:"review"`
	ReviewNumber  int       `gorm:"not null;default:0" json:"review_number"`
	SpentMoney    float64   `gorm:"type:decimal(10,2);not null;default:0" json:"spent_money"`
	IsAwarded     bool      `gorm:"not null;default:false" json:"is_awarded"`
	ChatDate      time.Time `gorm:"type:date;not null" json:"chat_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
