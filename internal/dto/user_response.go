package dto

import (
	"time"

	"github.com/SscSPs/user_account_app/internal/core/domain"
)

// UserResponse is the sanitized user projection returned by every endpoint.
// It deliberately has no field for the password hash or the refresh token.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to its sanitized response form.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		MobileNumber: user.MobileNumber,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
