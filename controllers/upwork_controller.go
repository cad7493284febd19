package controllers

import (
	"biztrack/constants"
	"biztrack/dto"
	"biztrack/models"
	"biztrack/response"
	"biztrack/services/notification"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpworkController struct {
	db       *gorm.DB
	notifier notification.Service
}

func NewUpworkController(db *gorm.DB, notifier notification.Service) *UpworkController {
	return &UpworkController{db: db, notifier: notifier}
}

func formatUpworkBid(bid models.UpworkBid) dto.UpworkBidResponse {
	return dto.UpworkBidResponse{
		ID:                bid.ID,
		BidDate:           fmtDate(bid.BidDate),
		ClientName:        bid.ClientName,
		Country:           bid.Country,
		TotalSpent:        bid.TotalSpent,
		AverageHourlyRate: bid.AverageHourlyRate,
		SpentBidAmount:    bid.SpentBidAmount,
		AccountName:       bid.AccountName,
		Status:            bid.Status,
		CreatedAt:         fmtTimestamp(bid.CreatedAt),
		UpdatedAt:         fmtTimestamp(bid.UpdatedAt),
		UserID:            bid.UserID,
	}
}

// GetBids lấy toàn bộ bid Upwork của caller, mới nhất trước.
// Path param :id được chấp nhận nhưng không dùng, danh sách luôn là của caller.
func (ctl *UpworkController) GetBids(c *gin.Context) {
	userID, _ := currentUser(c)

	var bids []models.UpworkBid
	if err := ctl.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bids).Error; err != nil {
		response.ServerError(c, "Failed to fetch bids")
		return
	}

	formatted := make([]dto.UpworkBidResponse, 0, len(bids))
	for _, bid := range bids {
		formatted = append(formatted, formatUpworkBid(bid))
	}
	response.Success(c, formatted)
}

func (ctl *UpworkController) CreateBid(c *gin.Context) {
	var request dto.CreateUpworkBidRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid bid payload")
		return
	}

	bidDate, err := validator.ParseDate(request.BidDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status := request.Status
	if status == "" {
		status = constants.BidStatusSent
	}
	if err := validator.ValidateUpworkStatus(status); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := currentUser(c)

	bid := models.UpworkBid{
		UserID:            userID,
		BidDate:           bidDate,
		ClientName:        request.ClientName,
		Country:           request.Country,
		TotalSpent:        request.TotalSpent,
		AverageHourlyRate: request.AverageHourlyRate,
		SpentBidAmount:    request.SpentBidAmount,
		AccountName:       request.AccountName,
		Status:            status,
	}

	if err := ctl.db.Create(&bid).Error; err != nil {
		response.ServerError(c, "Failed to create bid")
		return
	}

	if ctl.notifier != nil {
		var user models.User
		if err := ctl.db.First(&user, userID).Error; err == nil {
			ctl.notifier.SendMessage(notification.NewBidMessageBuilder(user.Name, "Upwork", 1).Build())
		}
	}

	response.Created(c, formatUpworkBid(bid))
}

func (ctl *UpworkController) UpdateBid(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var request dto.UpdateUpworkBidRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid bid payload")
		return
	}

	var bid models.UpworkBid
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&bid).Error; err != nil {
		response.NotFound(c, "Bid not found or unauthorized")
		return
	}

	if request.BidDate != "" {
		parsed, err := validator.ParseDate(request.BidDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		bid.BidDate = parsed
	}
	if request.ClientName != "" {
		bid.ClientName = request.ClientName
	}
	if request.Country != "" {
		bid.Country = request.Country
	}
	if request.TotalSpent != nil {
		bid.TotalSpent = *request.TotalSpent
	}
	if request.AverageHourlyRate != nil {
		bid.AverageHourlyRate = *request.AverageHourlyRate
	}
	if request.SpentBidAmount != nil {
		bid.SpentBidAmount = *request.SpentBidAmount
	}
	if request.AccountName != "" {
		bid.AccountName = request.AccountName
	}
	if request.Status != "" {
		if err := validator.ValidateUpworkStatus(request.Status); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		bid.Status = request.Status
	}

	if err := ctl.db.Save(&bid).Error; err != nil {
		response.ServerError(c, "Failed to update bid")
		return
	}

	response.Success(c, formatUpworkBid(bid))
}

func (ctl *UpworkController) DeleteBid(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var bid models.UpworkBid
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&bid).Error; err != nil {
		response.NotFound(c, "Bid not found or unauthorized")
		return
	}

	if err := ctl.db.Delete(&bid).Error; err != nil {
		response.ServerError(c, "Failed to delete bid")
		return
	}

	response.NoContent(c)
}
