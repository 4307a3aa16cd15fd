package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/user_account_app/internal/core/domain"
	portssvc "github.com/SscSPs/user_account_app/internal/core/ports/services"
	"github.com/SscSPs/user_account_app/internal/platform/config"
	"github.com/SscSPs/user_account_app/internal/utils"
)

// tokenService implements the TokenSvcFacade. It only needs the application
// configuration for secrets, expiries and the issuer.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new access token carrying the user's public
// identity fields, signed with the access secret.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := time.Now()
	claims := &utils.AccessTokenClaims{
		Username:         user.Username,
		Email:            user.Email,
		FullName:         user.FullName,
		MobileNumber:     user.MobileNumber,
		RegisteredClaims: utils.NewRegisteredClaims(user.UserID, s.cfg.JWTIssuer, s.cfg.AccessTokenExpiryDuration, now),
	}

	token, err := utils.SignAccessToken(claims, s.cfg.AccessTokenSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// GenerateRefreshToken creates a new refresh token carrying only the user ID,
// signed with the refresh secret.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := time.Now()
	claims := &utils.RefreshTokenClaims{
		RegisteredClaims: utils.NewRegisteredClaims(user.UserID, s.cfg.JWTIssuer, s.cfg.RefreshTokenExpiryDuration, now),
	}

	token, err := utils.SignRefreshToken(claims, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// VerifyAccessToken validates signature and expiry against the access secret.
func (s *tokenService) VerifyAccessToken(ctx context.Context, tokenString string) (*utils.AccessTokenClaims, error) {
	return utils.ParseAccessToken(tokenString, s.cfg.AccessTokenSecret)
}

// VerifyRefreshToken validates signature and expiry against the refresh
// secret and returns the user ID the token was issued for.
func (s *tokenService) VerifyRefreshToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := utils.ParseRefreshToken(tokenString, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
