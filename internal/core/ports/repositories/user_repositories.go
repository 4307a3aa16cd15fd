package repositories

import (
	"context"

	"github.com/SscSPs/user_account_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByLogin retrieves a user matching the given username or email.
	// Either argument may be empty; at least one must be set.
	FindUserByLogin(ctx context.Context, username, email string) (*domain.User, error)

	// FindUserIdentityByID retrieves a user by ID with the password hash and
	// refresh token excluded at the query level. Used by the auth middleware.
	FindUserIdentityByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A username/email/mobile collision with an
	// existing record returns apperrors.ErrDuplicate; the store's unique
	// indexes are the source of truth, there is no pre-check.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateProfile updates fullName, email and mobileNumber for a user.
	UpdateProfile(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// UpdateRefreshToken stores the latest issued refresh token for a user.
	// This is a targeted field write; the rest of the document is untouched.
	UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error

	// ClearRefreshToken removes the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// DeleteUser removes the user record entirely.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
