package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message định nghĩa body lỗi trả về cho client
type Message struct {
	Message string `json:"message"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Paginated bọc danh sách kèm phân trang
type Paginated struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Success trả về payload trực tiếp (200)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created trả về payload vừa tạo (201)
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent trả về 204 sau khi xóa
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SuccessWithPagination trả về danh sách có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Paginated{
		Data: data,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Message{Message: message})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Message{Message: "Authentication required"})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Message{Message: "Access denied"})
}

// NotFound trả về response không tìm thấy.
// Dùng chung cho cả trường hợp row không tồn tại và row không thuộc về caller.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Message{Message: message})
}

// Conflict trả về response xung đột dữ liệu (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Message{Message: message})
}

// ServerError trả về response lỗi server, không lộ chi tiết lỗi bên trong
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Message{Message: message})
}
