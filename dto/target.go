package dto

type UpdateTargetTimeRequest struct {
	WeekdayTarget *float64 `json:"weekdayTarget"`
	WeekendTarget *float64 `json:"weekendTarget"`
}

type TargetTimeResponse struct {
	ID            uint    `json:"id"`
	WeekdayTarget float64 `json:"weekdayTarget"`
	WeekendTarget float64 `json:"weekendTarget"`
	UpdatedAt     string  `json:"updatedAt"`
	UpdatedBy     *uint   `json:"updatedBy,omitempty"`
}
