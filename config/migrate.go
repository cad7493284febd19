package config

import (
	"log"

	"biztrack/constants"
	"biztrack/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MigrateAndSeed tạo bảng idempotent và seed dữ liệu mặc định lúc khởi động
func MigrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.WorkReport{},
		&models.TargetWorkingTime{},
		&models.Transaction{},
		&models.CashHistory{},
		&models.FreelancerBid{},
		&models.FreelancerChat{},
		&models.UpworkBid{},
	); err != nil {
		return err
	}

	// Seed row target mặc định nếu bảng trống
	var targetCount int64
	if err := db.Model(&models.TargetWorkingTime{}).Count(&targetCount).Error; err != nil {
		return err
	}
	if targetCount == 0 {
		target := models.TargetWorkingTime{
			WeekdayTarget: constants.DefaultWeekdayTarget,
			WeekendTarget: constants.DefaultWeekendTarget,
		}
		if err := db.Create(&target).Error; err != nil {
			return err
		}
	}

	// Seed admin mặc định nếu chưa có admin nào
	var adminCount int64
	if err := db.Model(&models.User{}).Where("role = ?", constants.RoleAdmin).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:        "Admin",
			Email:       "admin@example.com",
			Password:    string(hashed),
			Role:        constants.RoleAdmin,
			TargetMoney: constants.DefaultTargetMoney,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Default admin created with email: admin@example.com")
	}

	log.Println("Database initialized successfully")
	return nil
}
