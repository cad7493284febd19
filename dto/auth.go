package dto

import "time"

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type UserLoginResponse struct {
	UserID      uint      `json:"id"`
	UserName    string    `json:"name"`
	UserEmail   string    `json:"email"`
	UserRole    string    `json:"role"`
	TargetMoney float64   `json:"targetMoney"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
