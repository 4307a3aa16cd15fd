package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/user_account_app/internal/dto"
)

// respondSuccess writes the uniform success envelope.
func respondSuccess(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, dto.APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// respondError writes the uniform failure envelope.
func respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.APIError{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	})
}
