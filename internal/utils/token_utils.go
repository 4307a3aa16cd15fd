package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SscSPs/user_account_app/internal/apperrors"
)

// AccessTokenClaims is the payload of an access token. It carries the full
// public identity so protected handlers can respond without an extra lookup;
// the Subject registered claim holds the user ID.
type AccessTokenClaims struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	jwt.RegisteredClaims
}

// RefreshTokenClaims is the payload of a refresh token: only the user ID, in
// the Subject registered claim.
type RefreshTokenClaims struct {
	jwt.RegisteredClaims
}

// SignAccessToken signs an access token with HS256.
func SignAccessToken(claims *AccessTokenClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SignRefreshToken signs a refresh token with HS256.
func SignRefreshToken(claims *RefreshTokenClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// NewRegisteredClaims builds the standard claim set shared by both token kinds.
func NewRegisteredClaims(userID, issuer string, expiry time.Duration, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
}

// ParseAccessToken parses and validates an access token string. Expired
// tokens return apperrors.ErrTokenExpired; any other parse or signature
// failure returns apperrors.ErrTokenInvalid.
func ParseAccessToken(tokenString, secret string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	if err := parseHMAC(tokenString, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken parses and validates a refresh token string. Error kinds
// match ParseAccessToken.
func ParseRefreshToken(tokenString, secret string) (*RefreshTokenClaims, error) {
	claims := &RefreshTokenClaims{}
	if err := parseHMAC(tokenString, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func parseHMAC(tokenString, secret string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return apperrors.ErrTokenExpired
		}
		return apperrors.ErrTokenInvalid
	}
	if !token.Valid {
		return apperrors.ErrTokenInvalid
	}
	return nil
}
