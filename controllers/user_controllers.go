package controllers

import (
	"strconv"
	"strings"

	"biztrack/dto"
	"biztrack/models"
	"biztrack/response"
	"biztrack/services"
	"biztrack/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

func formatUser(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		TargetMoney: user.TargetMoney,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// GetUsers liệt kê user có phân trang, sắp theo tên
func (ctl *UserController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := ctl.db.Model(&models.User{}).Count(&total).Error; err != nil {
		response.ServerError(c, "Failed to count users")
		return
	}

	var users []models.User
	if err := ctl.db.Order("name ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error; err != nil {
		response.ServerError(c, "Failed to fetch users")
		return
	}

	formatted := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		formatted = append(formatted, formatUser(user))
	}

	response.SuccessWithPagination(c, formatted, page, limit, int(total))
}

func (ctl *UserController) GetUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := ctl.db.First(&user, id).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, formatUser(user))
}

func (ctl *UserController) CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid user payload")
		return
	}

	if request.Role != "" {
		if err := validator.ValidateRole(request.Role); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	user, err := services.CreateUser(models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		Role:        request.Role,
		TargetMoney: request.TargetMoney,
	})
	if err != nil {
		response.Conflict(c, err.Error())
		return
	}

	response.Created(c, formatUser(user))
}

func (ctl *UserController) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid user payload")
		return
	}

	var user models.User
	if err := ctl.db.First(&user, id).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Email != "" {
		email := strings.ToLower(request.Email)
		var existing models.User
		if err := ctl.db.Where("email = ? AND id <> ?", email, user.ID).First(&existing).Error; err == nil {
			response.Conflict(c, "Email already in use")
			return
		}
		user.Email = email
	}
	if request.Password != "" {
		hashed, err := services.HashPassword(request.Password)
		if err != nil {
			response.ServerError(c, "Failed to hash password")
			return
		}
		user.Password = hashed
	}
	if request.Role != "" {
		if err := validator.ValidateRole(request.Role); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		user.Role = request.Role
	}
	if request.TargetMoney != nil {
		user.TargetMoney = *request.TargetMoney
	}

	if err := ctl.db.Save(&user).Error; err != nil {
		response.ServerError(c, "Failed to update user")
		return
	}

	response.Success(c, formatUser(user))
}

func (ctl *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	callerID, _ := currentUser(c)

	var user models.User
	if err := ctl.db.First(&user, id).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	// Admin không tự xoá được chính mình
	if user.ID == callerID {
		response.BadRequest(c, "Cannot delete your own account")
		return
	}

	if err := ctl.db.Delete(&user).Error; err != nil {
		response.ServerError(c, "Failed to delete user")
		return
	}

	response.NoContent(c)
}
