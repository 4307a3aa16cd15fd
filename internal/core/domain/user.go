package domain

import "time"

// User represents a registered account in the domain.
// PasswordHash and RefreshToken never leave the service layer; responses use
// the sanitized dto.UserResponse projection instead.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	PasswordHash string `json:"-"`
	// RefreshToken holds the most recently issued refresh token, or the
	// empty string when the user is logged out. Only one is active per user.
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
