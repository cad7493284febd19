package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// fmtDate format ngày lịch cho response
func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// fmtTimestamp format timestamp ISO-8601 cho response
func fmtTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// currentUser lấy userID và role do AuthMiddleware gán vào context
func currentUser(c *gin.Context) (uint, string) {
	userID := c.GetUint("userID")
	role := c.GetString("userRole")
	return userID, role
}
