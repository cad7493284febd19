package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"biztrack/config"
	"biztrack/constants"
	"biztrack/models"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// GetUserByEmail lấy user theo email
func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error
	return user, err
}

// CreateUser tạo user mới, kiểm tra trùng email và băm mật khẩu
func CreateUser(input models.User) (models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("không được để trống name, email, password")
	}

	input.Email = strings.ToLower(input.Email)

	_, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", input.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}
	input.Password = hashed

	if input.Role == "" {
		input.Role = constants.RoleUser
	}
	if input.TargetMoney == 0 {
		input.TargetMoney = constants.DefaultTargetMoney
	}

	if err := config.DB.Create(&input).Error; err != nil {
		return models.User{}, err
	}

	return input, nil
}

// VerifyGoogleIDToken xác thực ID token từ Google, trả về email và tên
func VerifyGoogleIDToken(ctx context.Context, token string) (string, string, error) {
	payload, err := idtoken.Validate(ctx, token, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return "", "", err
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", "", errors.New("token không chứa email")
	}

	return strings.ToLower(email), name, nil
}
