package models

import "time"

type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user"`
	UserName        string    `gorm:"not null" json:"user_name"`
	ClientName      string    `gorm:"not null" json:"client_name"`
	ClientCountry   string    `gorm:"type:varchar(100);not null" json:"client_country"`
	Amount          float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentType     string    `gorm:"type:varchar(50);not null" json:"payment_type"`
	TransactionDate time.Time `gorm:"not null" json:"transaction_date"`
	Note            string    `gorm:"type:text" json:"note"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
