package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	TargetMoney float64   `gorm:"type:decimal(10,2);default:3000.00" json:"targetMoney"`

	Reports []WorkReport `gorm:"foreignKey:UserID" json:"reports,omitempty"`
}
