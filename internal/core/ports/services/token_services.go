package services

import (
	"context"
	"time"

	"github.com/SscSPs/user_account_app/internal/core/domain"
	"github.com/SscSPs/user_account_app/internal/utils"
)

// TokenSvcFacade issues and verifies the two signed session tokens. Access
// and refresh tokens are signed with distinct secrets and expiries.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived access token whose claims
	// carry the user's identity fields. Returns the token and its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a longer-lived refresh token whose claims
	// carry only the user ID. Returns the token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// VerifyAccessToken checks signature and expiry against the access
	// secret. Expiry failures return apperrors.ErrTokenExpired, anything
	// else apperrors.ErrTokenInvalid.
	VerifyAccessToken(ctx context.Context, tokenString string) (*utils.AccessTokenClaims, error)

	// VerifyRefreshToken checks a refresh token against the refresh secret
	// and returns the user ID it was issued for. Error kinds match
	// VerifyAccessToken.
	VerifyRefreshToken(ctx context.Context, tokenString string) (string, error)
}
