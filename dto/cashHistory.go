package dto

type CreateCashHistoryRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Reason string  `json:"reason" binding:"required"`
	Date   string  `json:"date" binding:"required"`
}

type UpdateCashHistoryRequest struct {
	Amount *float64 `json:"amount"`
	Reason string   `json:"reason"`
	Date   string   `json:"date"`
}

type CashHistoryResponse struct {
	ID        uint    `json:"id"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason"`
	Date      string  `json:"date"`
	UserID    uint    `json:"userId"`
	UserName  string  `json:"userName"`
	CreatedAt string  `json:"createdAt"`
}

// CashHistoryDateRange mô tả cửa sổ thời gian áp dụng cho danh sách
type CashHistoryDateRange struct {
	Month     string `json:"month,omitempty"`
	Year      int    `json:"year,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type CashHistoryListResponse struct {
	Records   []CashHistoryResponse `json:"records"`
	Total     float64               `json:"total"`
	DateRange CashHistoryDateRange  `json:"dateRange"`
}
