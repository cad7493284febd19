package controllers

import (
	"biztrack/constants"
	"biztrack/dto"
	"biztrack/models"
	"biztrack/response"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TargetTimeController struct {
	db *gorm.DB
}

func NewTargetTimeController(db *gorm.DB) *TargetTimeController {
	return &TargetTimeController{db: db}
}

func formatTargetTime(target models.TargetWorkingTime) dto.TargetTimeResponse {
	return dto.TargetTimeResponse{
		ID:            target.ID,
		WeekdayTarget: target.WeekdayTarget,
		WeekendTarget: target.WeekendTarget,
		UpdatedAt:     fmtTimestamp(target.UpdatedAt),
		UpdatedBy:     target.UpdatedBy,
	}
}

// GetTargetTime trả về mức giờ mục tiêu hiện hành, fallback mặc định nếu chưa seed
func (ctl *TargetTimeController) GetTargetTime(c *gin.Context) {
	var target models.TargetWorkingTime
	if err := ctl.db.First(&target).Error; err != nil {
		target = models.TargetWorkingTime{
			WeekdayTarget: constants.DefaultWeekdayTarget,
			WeekendTarget: constants.DefaultWeekendTarget,
		}
	}
	response.Success(c, formatTargetTime(target))
}

// UpdateTargetTime cập nhật mức giờ mục tiêu, chỉ admin
func (ctl *TargetTimeController) UpdateTargetTime(c *gin.Context) {
	var request dto.UpdateTargetTimeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid target payload")
		return
	}

	if request.WeekdayTarget == nil && request.WeekendTarget == nil {
		response.BadRequest(c, "Nothing to update")
		return
	}
	if request.WeekdayTarget != nil {
		if err := validator.ValidateWorkingHours(*request.WeekdayTarget); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	if request.WeekendTarget != nil {
		if err := validator.ValidateWorkingHours(*request.WeekendTarget); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	callerID, _ := currentUser(c)

	var target models.TargetWorkingTime
	if err := ctl.db.First(&target).Error; err != nil {
		target = models.TargetWorkingTime{
			WeekdayTarget: constants.DefaultWeekdayTarget,
			WeekendTarget: constants.DefaultWeekendTarget,
		}
	}

	if request.WeekdayTarget != nil {
		target.WeekdayTarget = *request.WeekdayTarget
	}
	if request.WeekendTarget != nil {
		target.WeekendTarget = *request.WeekendTarget
	}
	target.UpdatedBy = &callerID

	if err := ctl.db.Save(&target).Error; err != nil {
		response.ServerError(c, "Failed to update target")
		return
	}

	response.Success(c, formatTargetTime(target))
}
