package services

import (
	"testing"
	"time"

	"biztrack/constants"
	"biztrack/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newDashboardTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.WorkReport{},
		&models.TargetWorkingTime{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func TestMonthWindow(t *testing.T) {
	first, next := MonthWindow(day(2026, time.June, 15))
	if !first.Equal(day(2026, time.June, 1)) {
		t.Errorf("first = %v", first)
	}
	if !next.Equal(day(2026, time.July, 1)) {
		t.Errorf("next = %v", next)
	}
}

func TestMonthTargetHours(t *testing.T) {
	// Tháng 6/2026 có 30 ngày, 4 Chủ Nhật
	first, next := MonthWindow(day(2026, time.June, 15))
	got := monthTargetHours(first, next, 16, 8)
	want := 26*16.0 + 4*8.0
	if got != want {
		t.Errorf("monthTargetHours = %v, want %v", got, want)
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	db := newDashboardTestDB(t)
	svc := NewDashboardService(DashboardServiceOptions{DB: db})

	stats, err := svc.Stats(day(2026, time.June, 15))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalUsers != 0 {
		t.Errorf("TotalUsers = %d, want 0", stats.TotalUsers)
	}
	if stats.MonthlyPlan != 0 {
		t.Errorf("MonthlyPlan = %v, want 0", stats.MonthlyPlan)
	}
	if stats.MonthlyProgress != 0 {
		t.Errorf("MonthlyProgress = %d, want 0", stats.MonthlyProgress)
	}
	if stats.TopUser != "N/A" {
		t.Errorf("TopUser = %q, want N/A", stats.TopUser)
	}
}

func TestDashboardStats(t *testing.T) {
	db := newDashboardTestDB(t)

	admin := seedUser(t, db, "Root", "root@example.com", constants.RoleAdmin)
	alice := seedUser(t, db, "Alice", "alice@example.com", constants.RoleUser)
	bob := seedUser(t, db, "Bob", "bob@example.com", constants.RoleUser)

	if err := db.Model(&models.User{}).Where("id = ?", alice.ID).Update("target_money", 3000).Error; err != nil {
		t.Fatalf("set target: %v", err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", bob.ID).Update("target_money", 2000).Error; err != nil {
		t.Fatalf("set target: %v", err)
	}

	reports := []models.WorkReport{
		{UserID: alice.ID, ReportDate: day(2026, time.June, 2), WorkingHours: 6},
		{UserID: alice.ID, ReportDate: day(2026, time.June, 3), WorkingHours: 4},
		{UserID: bob.ID, ReportDate: day(2026, time.June, 2), WorkingHours: 10},
		// Ngoài tháng, không được tính
		{UserID: bob.ID, ReportDate: day(2026, time.May, 30), WorkingHours: 8},
		// Báo cáo của admin không tính vào top nhưng vẫn tính giờ tổng
		{UserID: admin.ID, ReportDate: day(2026, time.June, 2), WorkingHours: 2},
	}
	if err := db.Create(&reports).Error; err != nil {
		t.Fatalf("seed reports: %v", err)
	}

	svc := NewDashboardService(DashboardServiceOptions{DB: db})
	stats, err := svc.Stats(day(2026, time.June, 15))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", stats.TotalUsers)
	}
	if stats.MonthlyPlan != 5000 {
		t.Errorf("MonthlyPlan = %v, want 5000", stats.MonthlyPlan)
	}

	// Alice và Bob đều 10 giờ, hòa thì xếp theo tên
	if stats.TopUser != "Alice" {
		t.Errorf("TopUser = %q, want Alice", stats.TopUser)
	}

	// 22 giờ trên mẫu số 448 giờ (26 ngày thường x16 + 4 Chủ Nhật x8)
	if stats.MonthlyProgress != 5 {
		t.Errorf("MonthlyProgress = %d, want 5", stats.MonthlyProgress)
	}
}

func TestDashboardStatsCustomTargets(t *testing.T) {
	db := newDashboardTestDB(t)
	alice := seedUser(t, db, "Alice", "alice@example.com", constants.RoleUser)

	if err := db.Create(&models.TargetWorkingTime{WeekdayTarget: 8, WeekendTarget: 4}).Error; err != nil {
		t.Fatalf("seed target: %v", err)
	}
	if err := db.Create(&models.WorkReport{
		UserID: alice.ID, ReportDate: day(2026, time.June, 2), WorkingHours: 22.4,
	}).Error; err != nil {
		t.Fatalf("seed report: %v", err)
	}

	svc := NewDashboardService(DashboardServiceOptions{DB: db})
	stats, err := svc.Stats(day(2026, time.June, 15))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	// Mẫu số 26x8 + 4x4 = 224, tiến độ 22.4/224 = 10%
	if stats.MonthlyProgress != 10 {
		t.Errorf("MonthlyProgress = %d, want 10", stats.MonthlyProgress)
	}
}
