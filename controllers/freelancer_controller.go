package controllers

import (
	"strconv"
	"time"

	"biztrack/dto"
	"biztrack/models"
	"biztrack/response"
	"biztrack/services/notification"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FreelancerController struct {
	db       *gorm.DB
	notifier notification.Service
}

func NewFreelancerController(db *gorm.DB, notifier notification.Service) *FreelancerController {
	return &FreelancerController{db: db, notifier: notifier}
}

func formatFreelancerBid(bid models.FreelancerBid) dto.FreelancerBidResponse {
	return dto.FreelancerBidResponse{
		ID:        bid.ID,
		Skill:     bid.Skill,
		BidNumber: bid.BidNumber,
		BidDate:   fmtDate(bid.BidDate),
		CreatedAt: fmtTimestamp(bid.CreatedAt),
		UpdatedAt: fmtTimestamp(bid.UpdatedAt),
		UserID:    bid.UserID,
	}
}

func formatFreelancerChat(chat models.FreelancerChat) dto.FreelancerChatResponse {
	return dto.FreelancerChatResponse{
		ID:            chat.ID,
		ClientName:    chat.ClientName,
		ClientCountry: chat.ClientCountry,
		ProjectTitle:  chat.ProjectTitle,
		Review:        chat.Review,
		ReviewNumber:  chat.ReviewNumber,
		SpentMoney:    chat.SpentMoney,
		IsAwarded:     chat.IsAwarded,
		ChatDate:      fmtDate(chat.ChatDate),
		CreatedAt:     fmtTimestamp(chat.CreatedAt),
		UpdatedAt:     fmtTimestamp(chat.UpdatedAt),
		UserID:        chat.UserID,
	}
}

// GetBids lấy các lượt bid của user trong path param, mới nhất trước
func (ctl *FreelancerController) GetBids(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	var bids []models.FreelancerBid
	if err := ctl.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bids).Error; err != nil {
		response.ServerError(c, "Failed to fetch bids")
		return
	}

	formatted := make([]dto.FreelancerBidResponse, 0, len(bids))
	for _, bid := range bids {
		formatted = append(formatted, formatFreelancerBid(bid))
	}
	response.Success(c, formatted)
}

func (ctl *FreelancerController) CreateBid(c *gin.Context) {
	var request dto.CreateFreelancerBidRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid bid payload")
		return
	}

	if err := validator.ValidateBidNumber(request.BidNumber); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := currentUser(c)

	bidDate := time.Now().UTC().Truncate(24 * time.Hour)
	if request.BidDate != "" {
		parsed, err := validator.ParseDate(request.BidDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		bidDate = parsed
	}

	bid := models.FreelancerBid{
		UserID:    userID,
		Skill:     request.Skill,
		BidNumber: request.BidNumber,
		BidDate:   bidDate,
	}

	if err := ctl.db.Create(&bid).Error; err != nil {
		response.ServerError(c, "Failed to create bid")
		return
	}

	if ctl.notifier != nil {
		var user models.User
		if err := ctl.db.First(&user, userID).Error; err == nil {
			ctl.notifier.SendMessage(notification.NewBidMessageBuilder(user.Name, "Freelancer", bid.BidNumber).Build())
		}
	}

	response.Created(c, formatFreelancerBid(bid))
}

func (ctl *FreelancerController) UpdateBid(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var request dto.UpdateFreelancerBidRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid bid payload")
		return
	}

	// Row phải thuộc về caller, không thì trả 404 như không tồn tại
	var bid models.FreelancerBid
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&bid).Error; err != nil {
		response.NotFound(c, "Bid not found or unauthorized")
		return
	}

	if request.Skill != "" {
		bid.Skill = request.Skill
	}
	if request.BidNumber != nil {
		if err := validator.ValidateBidNumber(*request.BidNumber); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		bid.BidNumber = *request.BidNumber
	}
	if request.BidDate != "" {
		parsed, err := validator.ParseDate(request.BidDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		bid.BidDate = parsed
	}

	if err := ctl.db.Save(&bid).Error; err != nil {
		response.ServerError(c, "Failed to update bid")
		return
	}

	response.Success(c, formatFreelancerBid(bid))
}

func (ctl *FreelancerController) DeleteBid(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var bid models.FreelancerBid
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

// GetChats lấy các thread chat của user trong path param
func (ctl *FreelancerController) GetChats(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	var chats []models.FreelancerChat
	if err := ctl.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&chats).Error; err != nil {
		response.ServerError(c, "Failed to fetch chats")
		return
	}

	formatted := make([]dto.FreelancerChatResponse, 0, len(chats))
	for _, chat := range chats {
		formatted = append(formatted, formatFreelancerChat(chat))
	}
	response.Success(c, formatted)
}

func (ctl *FreelancerController) CreateChat(c *gin.Context) {
	var request dto.CreateFreelancerChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid chat payload")
		return
	}
	if err := validator.ValidateStruct(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := currentUser(c)

	chatDate := time.Now().UTC().Truncate(24 * time.Hour)
	if request.ChatDate != "" {
		parsed, err := validator.ParseDate(request.ChatDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		chatDate = parsed
	}

	chat := models.FreelancerChat{
		UserID:        userID,
		ClientName:    request.ClientName,
		ClientCountry: request.ClientCountry,
		ProjectTitle:  request.ProjectTitle,
		Review:        request.Review,
		ReviewNumber:  request.ReviewNumber,
		SpentMoney:    request.SpentMoney,
		IsAwarded:     request.IsAwarded,
		ChatDate:      chatDate,
	}

	if err := ctl.db.Create(&chat).Error; err != nil {
		response.ServerError(c, "Failed to create chat")
		return
	}

	if ctl.notifier != nil {
		var user models.User
		if err := ctl.db.First(&user, userID).Error; err == nil {
			ctl.notifier.SendMessage(notification.NewBidMessageBuilder(user.Name, "Freelancer", 1).Build())
		}
	}

	response.Created(c, formatFreelancerChat(chat))
}

func (ctl *FreelancerController) UpdateChat(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var request dto.UpdateFreelancerChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid chat payload")
		return
	}
	if err := validator.ValidateStruct(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var chat models.FreelancerChat
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&chat).Error; err != nil {
		response.NotFound(c, "Chat not found or unauthorized")
		return
	}

	if request.ClientName != "" {
		chat.ClientName = request.ClientName
	}
	if request.ClientCountry != "" {
		chat.ClientCountry = request.ClientCountry
	}
	if request.ProjectTitle != "" {
		chat.ProjectTitle = request.ProjectTitle
	}
	if request.Review != nil {
		chat.Review = *request.Review
	}
	if request.ReviewNumber != nil {
		chat.ReviewNumber = *request.ReviewNumber
	}
	if request.SpentMoney != nil {
		chat.SpentMoney = *request.SpentMoney
	}
	if request.IsAwarded != nil {
		chat.IsAwarded = *request.IsAwarded
	}
	if request.ChatDate != "" {
		parsed, err := validator.ParseDate(request.ChatDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		chat.ChatDate = parsed
	}

	if err := ctl.db.Save(&chat).Error; err != nil {
		response.ServerError(c, "Failed to update chat")
		return
	}

	response.Success(c, formatFreelancerChat(chat))
}

func (ctl *FreelancerController) DeleteChat(c *gin.Context) {
	id := c.Param("id")
	userID, _ := currentUser(c)

	var chat models.FreelancerChat
	if err := ctl.db.Where("id = ? AND user_id = ?", id, userID).First(&chat).Error; err != nil {
		response.NotFound(c, "Chat not found or unauthorized")
		return
	}

	if err := ctl.db.Delete(&chat).Error; err != nil {
		response.ServerError(c, "Failed to delete chat")
		return
	}

	response.NoContent(c)
}
