package services

import (
	"fmt"
	"strings"
	"time"

	"biztrack/config"
	"biztrack/constants"
	"biztrack/services/logger"

	"gorm.io/gorm"
)

// DayStats là số liệu bid của một user trong một ngày
type DayStats struct {
	Sent  int `json:"sent"`
	Chat  int `json:"chat"`
	Offer int `json:"offer"`
}

// PlatformStats map userName -> ngày (YYYY-MM-DD) -> DayStats
type PlatformStats map[string]map[string]DayStats

// BidStats là kết quả tổng hợp cho cả hai platform
type BidStats struct {
	Freelancer PlatformStats `json:"freelancer"`
	Upwork     PlatformStats `json:"upwork"`
}

// SentPolicy quyết định cách cộng số chat vào cột sent của Freelancer.
// Policy additive giữ nguyên hành vi cũ: ngày có cả bid lẫn chat thì
// sent = tổng bid + số chat; ngày chỉ có chat thì sent = số chat.
// Policy strict chỉ lấy sent từ bảng bid.
type SentPolicy string

const (
	SentPolicyAdditive SentPolicy = "additive"
	SentPolicyStrict   SentPolicy = "strict"
)

// SentPolicyFromEnv đọc BID_SENT_POLICY, mặc định additive
func SentPolicyFromEnv() SentPolicy {
	if strings.EqualFold(config.GetEnv("BID_SENT_POLICY"), string(SentPolicyStrict)) {
		return SentPolicyStrict
	}
	return SentPolicyAdditive
}

type BidStatsService struct {
	db     *gorm.DB
	logger logger.Logger
	policy SentPolicy
}

type BidStatsServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Policy SentPolicy
}

func NewBidStatsService(opts BidStatsServiceOptions) *BidStatsService {
	if opts.Policy == "" {
		opts.Policy = SentPolicyAdditive
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BidStatsService{
		db:     opts.DB,
		logger: opts.Logger,
		policy: opts.Policy,
	}
}

// WeeklyWindow trả về tuần Thứ Hai - Chủ Nhật chứa date
func WeeklyWindow(date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := int(day.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Chủ Nhật thuộc về tuần bắt đầu từ Thứ Hai trước đó
	}
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

type freelancerBidRow struct {
	UserName string
	Date     time.Time
	Sent     int
}

type freelancerChatRow struct {
	UserName string
	Date     time.Time
	Chat     int
	Offer    int
}

type upworkBidRow struct {
	UserName string
	Date     time.Time
	Sent     int
	Chat     int
	Offer    int
}

// Aggregate tổng hợp số liệu bid của mọi user role='user' trong cửa sổ
// [start, end] (bao gồm cả hai đầu, theo ngày lịch). Mỗi bảng nguồn chỉ
// query một lần cho tất cả user. Lỗi DB nào cũng hủy toàn bộ kết quả.
func (s *BidStatsService) Aggregate(start, end time.Time) (*BidStats, error) {
	var users []struct {
		ID   uint
		Name string
	}
	if err := s.db.Table("users").
		Select("id, name").
		Where("role = ?", constants.RoleUser).
		Order("name").
		Scan(&users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	stats := &BidStats{
		Freelancer: make(PlatformStats, len(users)),
		Upwork:     make(PlatformStats, len(users)),
	}
	// User không có row nào vẫn phải xuất hiện với map rỗng
	for _, u := range users {
		stats.Freelancer[u.Name] = map[string]DayStats{}
		stats.Upwork[u.Name] = map[string]DayStats{}
	}

	var bidRows []freelancerBidRow
	if err := s.db.Table("freelancer_bids fb").
		Select("u.name AS user_name, fb.bid_date AS date, COALESCE(SUM(fb.bid_number), 0) AS sent").
		Joins("JOIN users u ON u.id = fb.user_id").
		Where("u.role = ? AND fb.bid_date BETWEEN ? AND ?", constants.RoleUser, start, end).
		Group("u.name, fb.bid_date").
		Scan(&bidRows).Error; err != nil {
		return nil, fmt.Errorf("aggregate freelancer bids: %w", err)
	}

	var chatRows []freelancerChatRow
	if err := s.db.Table("freelancer_chats fc").
		Select("u.name AS user_name, fc.chat_date AS date, COUNT(*) AS chat, SUM(CASE WHEN fc.is_awarded THEN 1 ELSE 0 END) AS offer").
		Joins("JOIN users u ON u.id = fc.user_id").
		Where("u.role = ? AND fc.chat_date BETWEEN ? AND ?", constants.RoleUser, start, end).
		Group("u.name, fc.chat_date").
		Scan(&chatRows).Error; err != nil {
		return nil, fmt.Errorf("aggregate freelancer chats: %w", err)
	}

	var upworkRows []upworkBidRow
	if err := s.db.Table("upwork_bids ub").
		Select("u.name AS user_name, ub.bid_date AS date, COUNT(*) AS sent, "+
			"SUM(CASE WHEN ub.status = ? THEN 1 ELSE 0 END) AS chat, "+
			"SUM(CASE WHEN ub.status = ? THEN 1 ELSE 0 END) AS offer",
			constants.BidStatusChat, constants.BidStatusOffer).
		Joins("JOIN users u ON u.id = ub.user_id").
		Where("u.role = ? AND ub.bid_date BETWEEN ? AND ?", constants.RoleUser, start, end).
		Group("u.name, ub.bid_date").
		Scan(&upworkRows).Error; err != nil {
		return nil, fmt.Errorf("aggregate upwork bids: %w", err)
	}

	for _, row := range bidRows {
		perDate, ok := stats.Freelancer[row.UserName]
		if !ok {
			continue
		}
		perDate[row.Date.Format("2006-01-02")] = DayStats{Sent: row.Sent}
	}

	for _, row := range chatRows {
		perDate, ok := stats.Freelancer[row.UserName]
		if !ok {
			continue
		}
		dateStr := row.Date.Format("2006-01-02")
		if day, exists := perDate[dateStr]; exists {
			day.Chat = row.Chat
			day.Offer = row.Offer
			if s.policy == SentPolicyAdditive {
				day.Sent += row.Chat
			}
			perDate[dateStr] = day
		} else {
			day := DayStats{Chat: row.Chat, Offer: row.Offer}
			if s.policy == SentPolicyAdditive {
				// Không có row bid nào thì mỗi chat được tính như một lượt gửi
				day.Sent = row.Chat
			}
			perDate[dateStr] = day
		}
	}

	for _, row := range upworkRows {
		perDate, ok := stats.Upwork[row.UserName]
		if !ok {
			continue
		}
		perDate[row.Date.Format("2006-01-02")] = DayStats{
			Sent:  row.Sent,
			Chat:  row.Chat,
			Offer: row.Offer,
		}
	}

	s.logger.Debug("aggregated bid stats %s..%s for %d users",
		start.Format("2006-01-02"), end.Format("2006-01-02"), len(users))

	return stats, nil
}
