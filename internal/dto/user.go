package dto

// RegisterUserRequest carries the signup payload. All fields are required;
// mobile is a custom binding rule registered in handlers (10-15 digits).
type RegisterUserRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Username     string `json:"username" binding:"required,min=3"`
	MobileNumber string `json:"mobileNumber" binding:"required,mobile"`
}

// LoginRequest carries login credentials. Either email or username must be
// set; the handler rejects requests with both empty.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	Email        string `json:"email" binding:"required,email"`
	FullName     string `json:"fullName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"omitempty,mobile"`
}

// ChangePasswordRequest carries a password rotation.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
