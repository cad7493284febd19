package controllers

import (
	"strings"

	"biztrack/config"
	"biztrack/dto"
	"biztrack/models"
	"biztrack/response"
	"biztrack/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func setTokenCookie(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		false,
		true,
	)
}

func loginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		UserRole:    user.Role,
		TargetMoney: user.TargetMoney,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid credentials payload")
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.ServerError(c, "Failed to issue token")
		return
	}

	setTokenCookie(c, accessToken)

	response.Success(c, gin.H{
		"user":        loginResponse(user),
		"accessToken": accessToken,
	})
}

// AuthGoogle đăng nhập bằng Google ID token, user phải tồn tại sẵn
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Missing idToken")
		return
	}

	email, _, err := services.VerifyGoogleIDToken(c.Request.Context(), input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		response.NotFound(c, "No account for this Google identity")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}, 60*24*3)
	if err != nil {
		response.ServerError(c, "Failed to issue token")
		return
	}

	setTokenCookie(c, accessToken)

	response.Success(c, gin.H{
		"user":        loginResponse(user),
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	tokenString := c.GetString("token")
	if tokenString != "" && config.RedisClient != nil {
		if claims, err := services.ParseToken(tokenString); err == nil {
			services.BlacklistToken(c.Request.Context(), config.RedisClient, tokenString, services.TokenRemainingTTL(claims))
		}
	}

	c.SetCookie("access_token", "", -1, "/", "", false, true)

	response.Success(c, gin.H{"message": "Logged out"})
}

// Me trả về user hiện tại theo token
func Me(c *gin.Context) {
	userID, _ := currentUser(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, loginResponse(user))
}
