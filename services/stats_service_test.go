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

func newStatsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FreelancerBid{},
		&models.FreelancerChat{},
		&models.UpworkBid{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    email,
		Password: "hashed",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return user
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklyWindow(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "giữa tuần",
			input:     day(2026, time.August, 19), // Thứ Tư
			wantStart: day(2026, time.August, 17),
			wantEnd:   day(2026, time.August, 23),
		},
		{
			name:      "thứ hai là đầu tuần",
			input:     day(2026, time.August, 17),
			wantStart: day(2026, time.August, 17),
			wantEnd:   day(2026, time.August, 23),
		},
		{
			name:      "chủ nhật thuộc tuần trước",
			input:     day(2026, time.August, 23),
			wantStart: day(2026, time.August, 17),
			wantEnd:   day(2026, time.August, 23),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeeklyWindow(tt.input)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestAggregateFreelancer(t *testing.T) {
	db := newStatsTestDB(t)
	alice := seedUser(t, db, "Alice", "alice@example.com", constants.RoleUser)
	seedUser(t, db, "Carol", "carol@example.com", constants.RoleUser)

	bidDate := day(2026, time.August, 19)
	chatOnlyDate := day(2026, time.August, 20)

	bids := []models.FreelancerBid{
		{UserID: alice.ID, Skill: "golang", BidNumber: 2, BidDate: bidDate},
		{UserID: alice.ID, Skill: "react", BidNumber: 3, BidDate: bidDate},
	}
	if err := db.Create(&bids).Error; err != nil {
		t.Fatalf("seed bids: %v", err)
	}

	chats := []models.FreelancerChat{
		{UserID: alice.ID, ClientName: "Acme", ClientCountry: "US", ProjectTitle: "API", IsAwarded: true, ChatDate: bidDate},
		{UserID: alice.ID, ClientName: "Beta", ClientCountry: "DE", ProjectTitle: "Web", ChatDate: chatOnlyDate},
		{UserID: alice.ID, ClientName: "Gamma", ClientCountry: "FR", ProjectTitle: "App", ChatDate: chatOnlyDate},
	}
	if err := db.Create(&chats).Error; err != nil {
		t.Fatalf("seed chats: %v", err)
	}

	svc := NewBidStatsService(BidStatsServiceOptions{DB: db, Policy: SentPolicyAdditive})
	stats, err := svc.Aggregate(day(2026, time.August, 17), day(2026, time.August, 23))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	t.Run("ngày có cả bid lẫn chat", func(t *testing.T) {
		got := stats.Freelancer["Alice"]["2026-08-19"]
		want := DayStats{Sent: 6, Chat: 1, Offer: 1}
		if got != want {
			t.Errorf("DayStats = %+v, want %+v", got, want)
		}
	})

	t.Run("ngày chỉ có chat", func(t *testing.T) {
		got := stats.Freelancer["Alice"]["2026-08-20"]
		want := DayStats{Sent: 2, Chat: 2, Offer: 0}
		if got != want {
			t.Errorf("DayStats = %+v, want %+v", got, want)
		}
	})

	t.Run("user không có dữ liệu vẫn xuất hiện", func(t *testing.T) {
		perDate, ok := stats.Freelancer["Carol"]
		if !ok {
			t.Fatal("Carol missing from freelancer stats")
		}
		if len(perDate) != 0 {
			t.Errorf("Carol stats = %+v, want empty", perDate)
		}
	})

	t.Run("chạy lại cho kết quả y hệt", func(t *testing.T) {
		again, err := svc.Aggregate(day(2026, time.August, 17), day(2026, time.August, 23))
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		if got := again.Freelancer["Alice"]["2026-08-19"]; got != (DayStats{Sent: 6, Chat: 1, Offer: 1}) {
			t.Errorf("second pass = %+v", got)
		}
	})
}

func TestAggregateStrictPolicy(t *testing.T) {
	db := newStatsTestDB(t)
	alice := seedUser(t, db, "Alice", "alice@example.com", constants.RoleUser)

	bidDate := day(2026, time.August, 19)
	if err := db.Create(&models.FreelancerBid{
		UserID: alice.ID, Skill: "golang", BidNumber: 5, BidDate: bidDate,
	}).Error; err != nil {
		t.Fatalf("seed bid: %v", err)
	}
	if err := db.Create(&models.FreelancerChat{
		UserID: alice.ID, ClientName: "Acme", ClientCountry: "US",
		ProjectTitle: "API", IsAwarded: true, ChatDate: bidDate,
	}).Error; err != nil {
		t.Fatalf("seed chat: %v", err)
	}

	svc := NewBidStatsService(BidStatsServiceOptions{DB: db, Policy: SentPolicyStrict})
	stats, err := svc.Aggregate(bidDate, bidDate)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	got := stats.Freelancer["Alice"]["2026-08-19"]
	want := DayStats{Sent: 5, Chat: 1, Offer: 1}
	if got != want {
		t.Errorf("DayStats = %+v, want %+v", got, want)
	}
}

func TestAggregateUpwork(t *testing.T) {
	db := newStatsTestDB(t)
	bob := seedUser(t, db, "Bob", "bob@example.com", constants.RoleUser)
	admin := seedUser(t, db, "Root", "root@example.com", constants.RoleAdmin)

	bidDate := day(2026, time.August, 19)
	bids := []models.UpworkBid{
		{UserID: bob.ID, BidDate: bidDate, ClientName: "Acme", Country: "US", AccountName: "acct1", Status: constants.BidStatusChat},
		{UserID: bob.ID, BidDate: bidDate, ClientName: "Beta", Country: "GB", AccountName: "acct1", Status: constants.BidStatusChat},
		{UserID: bob.ID, BidDate: bidDate, ClientName: "Gamma", Country: "AU", AccountName: "acct2", Status: constants.BidStatusOffer},
		// Bid của admin không được tính
		{UserID: admin.ID, BidDate: bidDate, ClientName: "Delta", Country: "US", AccountName: "acct3", Status: constants.BidStatusSent},
	}
	if err := db.Create(&bids).Error; err != nil {
		t.Fatalf("seed upwork bids: %v", err)
	}

	svc := NewBidStatsService(BidStatsServiceOptions{DB: db})
	stats, err := svc.Aggregate(bidDate, bidDate)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	got := stats.Upwork["Bob"]["2026-08-19"]
	want := DayStats{Sent: 3, Chat: 2, Offer: 1}
	if got != want {
		t.Errorf("DayStats = %+v, want %+v", got, want)
	}

	if _, ok := stats.Upwork["Root"]; ok {
		t.Error("admin must not appear in stats")
	}
}

func TestAggregateWindowExcludesOutsideRows(t *testing.T) {
	db := newStatsTestDB(t)
	alice := seedUser(t, db, "Alice", "alice@example.com", constants.RoleUser)

	inside := day(2026, time.August, 19)
	outside := day(2026, time.August, 25)
	bids := []models.FreelancerBid{
		{UserID: alice.ID, Skill: "golang", BidNumber: 2, BidDate: inside},
		{UserID: alice.ID, Skill: "golang", BidNumber: 9, BidDate: outside},
	}
	if err := db.Create(&bids).Error; err != nil {
		t.Fatalf("seed bids: %v", err)
	}

	svc := NewBidStatsService(BidStatsServiceOptions{DB: db})
	stats, err := svc.Aggregate(day(2026, time.August, 17), day(2026, time.August, 23))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if len(stats.Freelancer["Alice"]) != 1 {
		t.Errorf("dates = %+v, want only 2026-08-19", stats.Freelancer["Alice"])
	}
	if got := stats.Freelancer["Alice"]["2026-08-19"]; got.Sent != 2 {
		t.Errorf("sent = %d, want 2", got.Sent)
	}
}
