package dto

type CreateTransactionRequest struct {
	ClientName      string  `json:"clientName" binding:"required"`
	ClientCountry   string  `json:"clientCountry" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	PaymentType     string  `json:"paymentType" binding:"required"`
	TransactionDate string  `json:"transactionDate" binding:"required"`
	Note            string  `json:"note"`
}

type UpdateTransactionRequest struct {
	ClientName      string   `json:"clientName"`
	ClientCountry   string   `json:"clientCountry"`
	Amount          *float64 `json:"amount"`
	PaymentType     string   `json:"paymentType"`
	TransactionDate string   `json:"transactionDate"`
	Note            *string  `json:"note"`
}

type TransactionResponse struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"userId"`
	UserName        string  `json:"userName"`
	ClientName      string  `json:"clientName"`
	ClientCountry   string  `json:"clientCountry"`
	Amount          float64 `json:"amount"`
	PaymentType     string  `json:"paymentType"`
	TransactionDate string  `json:"transactionDate"`
	Note            string  `json:"note"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}
