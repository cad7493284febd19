package controllers

import (
	"biztrack/dto"
	"biztrack/models"
	"biztrack/response"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TransactionController struct {
	db *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{db: db}
}

func formatTransaction(tx models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              tx.ID,
		UserID:          tx.UserID,
		UserName:        tx.UserName,
		ClientName:      tx.ClientName,
		ClientCountry:   tx.ClientCountry,
		Amount:          tx.Amount,
		PaymentType:     tx.PaymentType,
		TransactionDate: fmtDate(tx.TransactionDate),
		Note:            tx.Note,
		CreatedAt:       fmtTimestamp(tx.CreatedAt),
		UpdatedAt:       fmtTimestamp(tx.UpdatedAt),
	}
}

// GetTransactions liệt kê các giao dịch thu tiền, mới nhất trước
func (ctl *TransactionController) GetTransactions(c *gin.Context) {
	query := ctl.db.Model(&models.Transaction{})

	if startDate := c.Query("startDate"); startDate != "" {
		start, err := validator.ParseDate(startDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		query = query.Where("transaction_date >= ?", start)
	}
	if endDate := c.Query("endDate"); endDate != "" {
		end, err := validator.ParseDate(endDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		query = query.Where("transaction_date <= ?", end)
	}

	var transactions []models.Transaction
	if err := query.Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		response.ServerError(c, "Failed to fetch transactions")
		return
	}

	formatted := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		formatted = append(formatted, formatTransaction(tx))
	}
	response.Success(c, formatted)
}

func (ctl *TransactionController) CreateTransaction(c *gin.Context) {
	var request dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid transaction payload")
		return
	}

	if err := validator.ValidateAmount(request.Amount); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	transactionDate, err := validator.ParseDate(request.TransactionDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := currentUser(c)

	var user models.User
	if err := ctl.db.First(&user, userID).Error; err != nil {
		response.ServerError(c, "Failed to resolve user")
		return
	}

	tx := models.Transaction{
		UserID:          userID,
		UserName:        user.Name,
		ClientName:      request.ClientName,
		ClientCountry:   request.ClientCountry,
		Amount:          request.Amount,
		PaymentType:     request.PaymentType,
		TransactionDate: transactionDate,
		Note:            request.Note,
	}

	if err := ctl.db.Create(&tx).Error; err != nil {
		response.ServerError(c, "Failed to create transaction")
		return
	}

	response.Created(c, formatTransaction(tx))
}

func (ctl *TransactionController) UpdateTransaction(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var request dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid transaction payload")
		return
	}

	var tx models.Transaction
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		response.NotFound(c, "Transaction not found or unauthorized")
		return
	}

	if request.ClientName != "" {
		tx.ClientName = request.ClientName
	}
	if request.ClientCountry != "" {
		tx.ClientCountry = request.ClientCountry
	}
	if request.Amount != nil {
		if err := validator.ValidateAmount(*request.Amount); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		tx.Amount = *request.Amount
	}
	if request.PaymentType != "" {
		tx.PaymentType = request.PaymentType
	}
	if request.TransactionDate != "" {
		parsed, err := validator.ParseDate(request.TransactionDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		tx.TransactionDate = parsed
	}
	if request.Note != nil {
		tx.Note = *request.Note
	}

	if err := ctl.db.Save(&tx).Error; err != nil {
		response.ServerError(c, "Failed to update transaction")
		return
	}

	response.Success(c, formatTransaction(tx))
}

func (ctl *TransactionController) DeleteTransaction(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var tx models.Transaction
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		response.NotFound(c, "Transaction not found or unauthorized")
		return
	}

	if err := ctl.db.Delete(&tx).Error; err != nil {
		response.ServerError(c, "Failed to delete transaction")
		return
	}

	response.NoContent(c)
}
