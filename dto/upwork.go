package dto

type CreateUpworkBidRequest struct {
	BidDate           string  `json:"bidDate" binding:"required"`
	ClientName        string  `json:"clientName" binding:"required"`
	Country           string  `json:"country" binding:"required"`
	TotalSpent        float64 `json:"totalSpent"`
	AverageHourlyRate float64 `json:"averageHourlyRate"`
	SpentBidAmount    float64 `json:"spentBidAmount"`
	AccountName       string  `json:"accountName" binding:"required"`
	Status            string  `json:"status"`
}

type UpdateUpworkBidRequest struct {
	BidDate           string   `json:"bidDate"`
	ClientName        string   `json:"clientName"`
	Country           string   `json:"country"`
	TotalSpent        *float64 `json:"totalSpent"`
	AverageHourlyRate *float64 `json:"averageHourlyRate"`
	SpentBidAmount    *float64 `json:"spentBidAmount"`
	AccountName       string   `json:"accountName"`
	Status            string   `json:"status"`
}

type UpworkBidResponse struct {
	ID                uint    `json:"id"`
	BidDate           string  `json:"bidDate"`
	ClientName        string  `json:"clientName"`
	Country           string  `json:"country"`
	TotalSpent        float64 `json:"totalSpent"`
	AverageHourlyRate float64 `json:"averageHourlyRate"`
	SpentBidAmount    float64 `json:"spentBidAmount"`
	AccountName       string  `json:"accountName"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
	UserID            uint    `json:"userId"`
}
