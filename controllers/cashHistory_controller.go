package controllers

import (
	"fmt"
	"strconv"
	"time"

	"biztrack/dto"
	"biztrack/models"
	"biztrack/response"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CashHistoryController struct {
	db *gorm.DB
}

func NewCashHistoryController(db *gorm.DB) *CashHistoryController {
	return &CashHistoryController{db: db}
}

func formatCashHistory(record models.CashHistory) dto.CashHistoryResponse {
	resp := dto.CashHistoryResponse{
		ID:        record.ID,
		Amount:    record.Amount,
		Reason:    record.Reason,
		Date:      fmtDate(record.Date),
		UserID:    record.UserID,
		CreatedAt: fmtTimestamp(record.CreatedAt),
	}
	if record.User.ID != 0 {
		resp.UserName = record.User.Name
	}
	return resp
}

// resolveCashWindow xác định cửa sổ thời gian từ query param.
// startDate/endDate được ưu tiên, không thì dùng month/year, mặc định tháng hiện tại.
func resolveCashWindow(c *gin.Context) (time.Time, time.Time, dto.CashHistoryDateRange, error) {
	startParam := c.Query("startDate")
	endParam := c.Query("endDate")

	if startParam != "" && endParam != "" {
		start, err := validator.ParseDate(startParam)
		if err != nil {
			return time.Time{}, time.Time{}, dto.CashHistoryDateRange{}, err
		}
		end, err := validator.ParseDate(endParam)
		if err != nil {
			return time.Time{}, time.Time{}, dto.CashHistoryDateRange{}, err
		}
		return start, end, dto.CashHistoryDateRange{
			StartDate: startParam,
			EndDate:   endParam,
		}, nil
	}

	now := time.Now().UTC()
	year := now.Year()
	month := int(now.Month())

	if yearParam := c.Query("year"); yearParam != "" {
		if parsed, err := strconv.Atoi(yearParam); err == nil {
			year = parsed
		}
	}
	if monthParam := c.Query("month"); monthParam != "" {
		if parsed, err := strconv.Atoi(monthParam); err == nil && parsed >= 1 && parsed <= 12 {
			month = parsed
		}
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-24 * time.Hour)

	return start, end, dto.CashHistoryDateRange{
		Month: fmt.Sprintf("%02d", month),
		Year:  year,
	}, nil
}

// GetCashHistory liệt kê sổ quỹ trong cửa sổ thời gian kèm tổng cộng dồn
func (ctl *CashHistoryController) GetCashHistory(c *gin.Context) {
	start, end, dateRange, err := resolveCashWindow(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var records []models.CashHistory
	if err := ctl.db.Preload("User").
		Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&records).Error; err != nil {
		response.ServerError(c, "Failed to fetch cash history")
		return
	}

	var total float64
	formatted := make([]dto.CashHistoryResponse, 0, len(records))
	for _, record := range records {
		total += record.Amount
		formatted = append(formatted, formatCashHistory(record))
	}

	response.Success(c, dto.CashHistoryListResponse{
		Records:   formatted,
		Total:     total,
		DateRange: dateRange,
	})
}

func (ctl *CashHistoryController) CreateCashHistory(c *gin.Context) {
	var request dto.CreateCashHistoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid cash history payload")
		return
	}

	date, err := validator.ParseDate(request.Date)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := currentUser(c)

	record := models.CashHistory{
		Amount: request.Amount,
		Reason: request.Reason,
		Date:   date,
		UserID: userID,
	}

	if err := ctl.db.Create(&record).Error; err != nil {
		response.ServerError(c, "Failed to create cash history")
		return
	}

	response.Created(c, formatCashHistory(record))
}

func (ctl *CashHistoryController) UpdateCashHistory(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var request dto.UpdateCashHistoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid cash history payload")
		return
	}

	var record models.CashHistory
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		response.NotFound(c, "Cash history not found or unauthorized")
		return
	}

	if request.Amount != nil {
		record.Amount = *request.Amount
	}
	if request.Reason != "" {
		record.Reason = request.Reason
	}
	if request.Date != "" {
		parsed, err := validator.ParseDate(request.Date)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		record.Date = parsed
	}

	if err := ctl.db.Save(&record).Error; err != nil {
		response.ServerError(c, "Failed to update cash history")
		return
	}

	response.Success(c, formatCashHistory(record))
}

func (ctl *CashHistoryController) DeleteCashHistory(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var record models.CashHistory
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		response.NotFound(c, "Cash history not found or unauthorized")
		return
	}

	if err := ctl.db.Delete(&record).Error; err != nil {
		response.ServerError(c, "Failed to delete cash history")
		return
	}

	response.NoContent(c)
}
