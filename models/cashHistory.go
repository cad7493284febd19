package models

import "time"

type CashHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Reason    string    `gorm:"type:text;not null" json:"reason"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CashHistory) TableName() string {
	return "cash_history"
}
