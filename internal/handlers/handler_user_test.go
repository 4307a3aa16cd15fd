package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/user_account_app/internal/apperrors"
	"github.com/SscSPs/user_account_app/internal/core/domain"
	"github.com/SscSPs/user_account_app/internal/core/services"
	"github.com/SscSPs/user_account_app/internal/platform/config"
)

// issueAccessToken signs a token for user through the same token service the router uses.
func issueAccessToken(t *testing.T, cfg *config.Config, user *domain.User) string {
	t.Helper()
	token, _, err := services.NewTokenService(cfg).GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	return token
}

func authedRequest(method, path string, body any, token string, cfg *config.Config) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cfg.TokenTransport == config.TransportHeader {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.AddCookie(&http.Cookie{Name: cfg.AccessTokenCookieName, Value: token})
	}
	return req
}

func TestGetCurrentUser_Success(t *testing.T) {
	cfg := newHandlerTestConfig()
	user := sampleUser()
	userSvc := new(MockUserService)
	userSvc.On("GetUserIdentityByID", mock.Anything, user.UserID).Return(user, nil)

	r := newTestRouter(cfg, userSvc)
	token := issueAccessToken(t, cfg, user)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/user/me", nil, token, cfg))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]any)

	// Exactly the sanitized field set, nothing credential-bearing.
	assert.ElementsMatch(t,
		[]string{"userID", "username", "email", "fullName", "mobileNumber", "createdAt", "updatedAt"},
		mapKeys(data))
	assert.Equal(t, user.UserID, data["userID"])
	assert.Equal(t, user.Email, data["email"])
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestGetCurrentUser_HeaderTransport(t *testing.T) {
	cfg := newHandlerTestConfig()
	cfg.TokenTransport = config.TransportHeader
	user := sampleUser()
	userSvc := new(MockUserService)
	userSvc.On("GetUserIdentityByID", mock.Anything, user.UserID).Return(user, nil)

	r := newTestRouter(cfg, userSvc)
	token := issueAccessToken(t, cfg, user)

	// Bearer header works.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/user/me", nil, token, cfg))
	assert.Equal(t, http.StatusOK, w.Code)

	// A cookie is ignored when the transport is the Authorization header.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/me", nil)
	req.AddCookie(&http.Cookie{Name: cfg.AccessTokenCookieName, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	cfg := newHandlerTestConfig()
	user := sampleUser()
	userSvc := new(MockUserService)

	r := newTestRouter(cfg, userSvc)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/user/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, false, envelope["success"])
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCfg := newHandlerTestConfig()
		expiredCfg.AccessTokenExpiryDuration = -time.Minute
		token := issueAccessToken(t, expiredCfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/user/me", nil, token, cfg))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Token has expired", envelope["message"])
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/user/me", nil, "not.a.token", cfg))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for deleted user", func(t *testing.T) {
		userSvc.On("GetUserIdentityByID", mock.Anything, user.UserID).Return(nil, apperrors.ErrNotFound)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/user/me", nil, token, cfg))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	cfg := newHandlerTestConfig()
	user := sampleUser()

	newRouter := func(userSvc *MockUserService) *gin.Engine {
		userSvc.On("GetUserIdentityByID", mock.Anything, user.UserID).Return(user, nil)
		return newTestRouter(cfg, userSvc)
	}

	t.Run("success", func(t *testing.T) {
		userSvc := new(MockUserService)
		updated := *user
		updated.FullName = "Alice B"
		userSvc.On("UpdateProfile", mock.Anything, user.UserID, mock.Anything).Return(&updated, nil)
		r := newRouter(userSvc)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/detail-update", gin.H{
			"fullName": "Alice B",
			"email":    user.Email,
		}, token, cfg))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Account details updated successfully!", envelope["message"])
		data := envelope["data"].(map[string]any)
		assert.Equal(t, "Alice B", data["fullName"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		userSvc := new(MockUserService)
		r := newRouter(userSvc)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/detail-update", gin.H{
			"fullName": "Alice B",
		}, token, cfg))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userSvc.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("UpdateProfile", mock.Anything, user.UserID, mock.Anything).Return(nil, apperrors.ErrDuplicate)
		r := newRouter(userSvc)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/detail-update", gin.H{
			"fullName": "Alice B",
			"email":    "taken@x.com",
		}, token, cfg))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestChangePassword(t *testing.T) {
	cfg := newHandlerTestConfig()
	user := sampleUser()

	newRouter := func(userSvc *MockUserService) *gin.Engine {
		userSvc.On("GetUserIdentityByID", mock.Anything, user.UserID).Return(user, nil)
		return newTestRouter(cfg, userSvc)
	}

	t.Run("success", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("ChangePassword", mock.Anything, user.UserID, "OldSecret1", "NewSecret1").Return(nil)
		r := newRouter(userSvc)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/password-change", gin.H{
			"oldPassword": "OldSecret1",
			"newPassword": "NewSecret1",
		}, token, cfg))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Password changed successfully", envelope["message"])
	})

	t.Run("wrong old password", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("ChangePassword", mock.Anything, user.UserID, "wrong", "NewSecret1").
			Return(apperrors.ErrValidation)
		r := newRouter(userSvc)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/password-change", gin.H{
			"oldPassword": "wrong",
			"newPassword": "NewSecret1",
		}, token, cfg))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Invalid old password", envelope["message"])
	})

	t.Run("new password equals old", func(t *testing.T) {
		userSvc := new(MockUserService)
		r := newRouter(userSvc)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/password-change", gin.H{
			"oldPassword": "SameSecret1",
			"newPassword": "SameSecret1",
		}, token, cfg))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userSvc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	cfg := newHandlerTestConfig()
	user := sampleUser()
	userSvc := new(MockUserService)
	userSvc.On("GetUserIdentityByID", mock.Anything, user.UserID).Return(user, nil)
	userSvc.On("ClearRefreshToken", mock.Anything, user.UserID).Return(nil)

	r := newTestRouter(cfg, userSvc)
	token := issueAccessToken(t, cfg, user)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/logout", nil, token, cfg))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "User logged out", envelope["message"])

	// Both auth cookies are blanked out.
	for _, ck := range w.Result().Cookies() {
		assert.Empty(t, ck.Value)
	}
	assert.Len(t, w.Result().Cookies(), 2)
	userSvc.AssertExpectations(t)
}

func TestDeleteAccount(t *testing.T) {
	cfg := newHandlerTestConfig()
	user := sampleUser()

	t.Run("success clears cookies", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("GetUserIdentityByID", mock.Anything, user.UserID).Return(user, nil)
		userSvc.On("DeleteUser", mock.Anything, user.UserID).Return(nil)
		r := newTestRouter(cfg, userSvc)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/delete-account", nil, token, cfg))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "User deleted successfully!", envelope["message"])
		for _, ck := range w.Result().Cookies() {
			assert.Empty(t, ck.Value)
		}
		userSvc.AssertExpectations(t)
	})

	t.Run("already deleted", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("GetUserIdentityByID", mock.Anything, user.UserID).Return(user, nil)
		userSvc.On("DeleteUser", mock.Anything, user.UserID).Return(apperrors.ErrNotFound)
		r := newTestRouter(cfg, userSvc)
		token := issueAccessToken(t, cfg, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/user/delete-account", nil, token, cfg))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
