package dto

type CreateReportRequest struct {
	ReportDate   string  `json:"reportDate" binding:"required"`
	WorkingHours float64 `json:"workingHours" binding:"required"`
	Description  string  `json:"description"`
}

type UpdateReportRequest struct {
	ReportDate   string   `json:"reportDate"`
	WorkingHours *float64 `json:"workingHours"`
	Description  *string  `json:"description"`
}

type ReportResponse struct {
	ID           uint    `json:"id"`
	UserID       uint    `json:"userId"`
	UserName     string  `json:"userName,omitempty"`
	ReportDate   string  `json:"reportDate"`
	WorkingHours float64 `json:"workingHours"`
	Description  string  `json:"description"`
	CreatedAt    string  `json:"createdAt"`
}
