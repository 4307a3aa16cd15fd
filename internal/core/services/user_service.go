package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/user_account_app/internal/apperrors"
	"github.com/SscSPs/user_account_app/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_account_app/internal/core/ports/services"
	"github.com/SscSPs/user_account_app/internal/dto"
	"github.com/SscSPs/user_account_app/internal/utils"
)

// userService implements the UserSvcFacade over the credential store.
type userService struct {
	userRepo   portsrepo.UserRepositoryFacade
	bcryptCost int
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, bcryptCost int) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// RegisterUser hashes the password and inserts the new user. Uniqueness of
// username/email/mobile is decided by the store at write time: a concurrent
// registration with the same identity loses with apperrors.ErrDuplicate.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Email:        strings.TrimSpace(req.Email),
		FullName:     strings.TrimSpace(req.FullName),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

// AuthenticateUser looks up the user by email or username and verifies the
// password. The hash check runs even when no user is found, so the two
// failure paths cost roughly the same and both report ErrUnauthorized.
func (s *userService) AuthenticateUser(ctx context.Context, email, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByLogin(ctx, strings.ToLower(strings.TrimSpace(username)), strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.CheckPasswordHash(password, dummyHash)
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// dummyHash is a bcrypt digest of an unguessable throwaway value, compared
// against when the login identity does not exist.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserIdentityByID retrieves a user with credential fields excluded at
// the store level. This is the lookup the auth middleware performs.
func (s *userService) GetUserIdentityByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserIdentityByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user identity by ID: %w", err)
	}
	return user, nil
}

// UpdateProfile updates fullName, email and mobileNumber. An empty mobile
// number in the request leaves the stored value unchanged.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.Email = strings.TrimSpace(req.Email)
	if mobile := strings.TrimSpace(req.MobileNumber); mobile != "" {
		user.MobileNumber = mobile
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateProfile(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the old password, requires the new one to differ,
// and stores a fresh hash.
func (s *userService) ChangePassword(ctx context.Context, userID string, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("invalid old password: %w", apperrors.ErrValidation)
	}
	if oldPassword == newPassword {
		return fmt.Errorf("new password must differ from the old one: %w", apperrors.ErrValidation)
	}

	newHash, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}

// PersistRefreshToken stores the latest issued refresh token on the user record.
func (s *userService) PersistRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshToken); err != nil {
		return fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return nil
}

// ClearRefreshToken clears the stored refresh token on logout.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// DeleteUser removes the user record entirely.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
