package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/user_account_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// currentUserKey stores the sanitized identity loaded by the auth middleware.
const currentUserKey = contextKey("currentUser")

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetCurrentUserFromContext retrieves the sanitized user identity attached by
// the auth middleware. PasswordHash and RefreshToken are always empty here;
// the lookup excluded them at the store.
func GetCurrentUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(currentUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
