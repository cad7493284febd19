package controllers

import (
	"errors"
	"strconv"

	"biztrack/constants"
	"biztrack/dto"
	"biztrack/models"
	"biztrack/response"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	db *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{db: db}
}

func formatReport(report models.WorkReport) dto.ReportResponse {
	resp := dto.ReportResponse{
		ID:           report.ID,
		UserID:       report.UserID,
		ReportDate:   fmtDate(report.ReportDate),
		WorkingHours: report.WorkingHours,
		Description:  report.Description,
		CreatedAt:    fmtTimestamp(report.CreatedAt),
	}
	if report.User.ID != 0 {
		resp.UserName = report.User.Name
	}
	return resp
}

// GetReports liệt kê báo cáo giờ làm. Admin thấy tất cả, user chỉ thấy của mình.
// Hỗ trợ lọc theo khoảng ngày qua startDate/endDate.
func (ctl *ReportController) GetReports(c *gin.Context) {
	callerID, role := currentUser(c)

	query := ctl.db.Model(&models.WorkReport{}).Preload("User")
	if role != constants.RoleAdmin {
		query = query.Where("user_id = ?", callerID)
	} else if userParam := c.Query("userId"); userParam != "" {
		if userID, err := strconv.Atoi(userParam); err == nil {
			query = query.Where("user_id = ?", userID)
		}
	}

	if startDate := c.Query("startDate"); startDate != "" {
		start, err := validator.ParseDate(startDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		query = query.Where("report_date >= ?", start)
	}
	if endDate := c.Query("endDate"); endDate != "" {
		end, err := validator.ParseDate(endDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		query = query.Where("report_date <= ?", end)
	}

	var reports []models.WorkReport
	if err := query.Order("report_date DESC").Find(&reports).Error; err != nil {
		response.ServerError(c, "Failed to fetch reports")
		return
	}

	formatted := make([]dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		formatted = append(formatted, formatReport(report))
	}
	response.Success(c, formatted)
}

func (ctl *ReportController) CreateReport(c *gin.Context) {
	var request dto.CreateReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid report payload")
		return
	}

	if err := validator.ValidateWorkingHours(request.WorkingHours); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reportDate, err := validator.ParseDate(request.ReportDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := currentUser(c)

	// Mỗi user chỉ có một báo cáo mỗi ngày
	var existing models.WorkReport
	err = ctl.db.Where("user_id = ? AND report_date = ?", userID, reportDate).First(&existing).Error
	if err == nil {
		response.Conflict(c, "Report already exists for this date")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c, "Failed to check existing report")
		return
	}

	report := models.WorkReport{
		UserID:       userID,
		ReportDate:   reportDate,
		WorkingHours: request.WorkingHours,
		Description:  request.Description,
	}

	if err := ctl.db.Create(&report).Error; err != nil {
		response.ServerError(c, "Failed to create report")
		return
	}

	response.Created(c, formatReport(report))
}

func (ctl *ReportController) UpdateReport(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var request dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid report payload")
		return
	}

	var report models.WorkReport
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&report).Error; err != nil {
		response.NotFound(c, "Report not found or unauthorized")
		return
	}

	if request.ReportDate != "" {
		parsed, err := validator.ParseDate(request.ReportDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		var existing models.WorkReport
		err = ctl.db.Where("user_id = ? AND report_date = ? AND id <> ?", userID, parsed, report.ID).
			First(&existing).Error
		if err == nil {
			response.Conflict(c, "Report already exists for this date")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.ServerError(c, "Failed to check existing report")
			return
		}
		report.ReportDate = parsed
	}
	if request.WorkingHours != nil {
		if err := validator.ValidateWorkingHours(*request.WorkingHours); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		report.WorkingHours = *request.WorkingHours
	}
	if request.Description != nil {
		report.Description = *request.Description
	}

	if err := ctl.db.Save(&report).Error; err != nil {
		response.ServerError(c, "Failed to update report")
		return
	}

	response.Success(c, formatReport(report))
}

func (ctl *ReportController) DeleteReport(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var report models.WorkReport
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&report).Error; err != nil {
		response.NotFound(c, "Report not found or unauthorized")
		return
	}

	if err := ctl.db.Delete(&report).Error; err != nil {
		response.ServerError(c, "Failed to delete report")
		return
	}

	response.NoContent(c)
}
