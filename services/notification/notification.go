package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BidMessageBuilder dựng thông báo khi có bid/chat mới
type BidMessageBuilder struct {
	userName string
	platform string
	count    int
}

func NewBidMessageBuilder(userName, platform string, count int) *BidMessageBuilder {
	return &BidMessageBuilder{
		userName: userName,
		platform: platform,
		count:    count,
	}
}

func (b *BidMessageBuilder) Build() string {
	if b.count > 1 {
		return fmt.Sprintf("🔔 %s vừa gửi %d bid trên %s.", b.userName, b.count, b.platform)
	}
	return fmt.Sprintf("🔔 %s vừa có hoạt động mới trên %s.", b.userName, b.platform)
}

// SummaryMessageBuilder dựng thông báo tổng kết bid cuối ngày
type SummaryMessageBuilder struct {
	date           string
	freelancerSent int
	upworkSent     int
}

func NewSummaryMessageBuilder(date string, freelancerSent, upworkSent int) *SummaryMessageBuilder {
	return &SummaryMessageBuilder{
		date:           date,
		freelancerSent: freelancerSent,
		upworkSent:     upworkSent,
	}
}

func (b *SummaryMessageBuilder) Build() string {
	return fmt.Sprintf("📊 Tổng kết %s: %d bid Freelancer, %d bid Upwork.",
		b.date, b.freelancerSent, b.upworkSent)
}
