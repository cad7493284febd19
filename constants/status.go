package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Upwork bid status
const (
	BidStatusSent       = "sent"
	BidStatusChat       = "chat"
	BidStatusOffer      = "offer"
	BidStatusClientView = "client_view"
	BidStatusNoView     = "no_view"
	BidStatusReject     = "reject"
)

// UpworkBidStatuses danh sách status hợp lệ của upwork bid
var UpworkBidStatuses = []string{
	BidStatusSent,
	BidStatusChat,
	BidStatusOffer,
	BidStatusClientView,
	BidStatusNoView,
	BidStatusReject,
}

// Giờ mục tiêu mặc định mỗi ngày
const (
	DefaultWeekdayTarget = 16.00
	DefaultWeekendTarget = 8.00
)

// Target tiền mặc định của user mới
const DefaultTargetMoney = 3000.00
