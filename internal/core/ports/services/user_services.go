package services

import (
	"context"

	"github.com/SscSPs/user_account_app/internal/core/domain"
	"github.com/SscSPs/user_account_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserIdentityByID retrieves a user by ID with the password hash and
	// refresh token excluded at the store level.
	GetUserIdentityByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateProfile updates the mutable profile fields of a user.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// ChangePassword verifies the old password and stores a hash of the new one.
	ChangePassword(ctx context.Context, userID string, oldPassword, newPassword string) error

	// PersistRefreshToken stores the latest issued refresh token for a user.
	PersistRefreshToken(ctx context.Context, userID string, refreshToken string) error

	// ClearRefreshToken clears the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a user account permanently.
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates by email or username plus password.
	// Unknown identity and wrong password both yield apperrors.ErrUnauthorized
	// so callers cannot distinguish them.
	AuthenticateUser(ctx context.Context, email, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
