package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/user_account_app/internal/apperrors"
	portssvc "github.com/SscSPs/user_account_app/internal/core/ports/services"
	"github.com/SscSPs/user_account_app/internal/dto"
	"github.com/SscSPs/user_account_app/internal/platform/config"
)

// AuthMiddleware creates a Gin middleware handler that verifies the access
// token and attaches the referenced user's sanitized identity to the request
// context. The token is read from exactly one transport, selected by
// cfg.TokenTransport: the access-token cookie or the Authorization header.
func AuthMiddleware(cfg *config.Config, tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := extractToken(c, cfg)
		if err != nil {
			logger.Warn("No access token in request", slog.String("transport", cfg.TokenTransport))
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := tokenSvc.VerifyAccessToken(c.Request.Context(), tokenString)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				msg = "Token has expired"
			}
			logger.Warn("Access token verification failed", slog.String("error", err.Error()))
			abortUnauthorized(c, msg)
			return
		}

		// The token may outlive the account; confirm the user still exists.
		user, err := userSvc.GetUserIdentityByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token references a user that no longer exists", slog.String("user_id", claims.Subject))
				abortUnauthorized(c, "Invalid token")
				return
			}
			logger.Error("Failed to load user for verified token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.APIError{
				StatusCode: http.StatusInternalServerError,
				Message:    "Failed to authenticate request",
				Success:    false,
			})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
		ctx = context.WithValue(ctx, currentUserKey, user)

		// Enrich the request logger with the authenticated identity.
		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractToken reads the access token from the configured transport only.
func extractToken(c *gin.Context, cfg *config.Config) (string, error) {
	if cfg.TokenTransport == config.TransportHeader {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return "", apperrors.ErrUnauthorized
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", apperrors.ErrUnauthorized
		}
		return parts[1], nil
	}

	token, err := c.Cookie(cfg.AccessTokenCookieName)
	if err != nil || token == "" {
		return "", apperrors.ErrUnauthorized
	}
	return token, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		Success:    false,
	})
}
