package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/user_account_app/internal/apperrors"
	portssvc "github.com/SscSPs/user_account_app/internal/core/ports/services"
	"github.com/SscSPs/user_account_app/internal/dto"
	"github.com/SscSPs/user_account_app/internal/middleware"
	"github.com/SscSPs/user_account_app/internal/platform/config"
)

// userHandler handles the protected account-management routes.
type userHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// newUserHandler creates a new userHandler.
func newUserHandler(cfg *config.Config, us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
		cfg:         cfg,
	}
}

// getCurrentUser godoc
// @Summary Get the current user
// @Description Returns the sanitized record of the authenticated user.
// @Tags user
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIError
// @Security BearerAuth
// @Router /user/me [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	user, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "Current user fetched successfully")
}

// updateProfile godoc
// @Summary Update profile details
// @Description Updates full name, email and mobile number of the authenticated user.
// @Tags user
// @Accept json
// @Produce json
// @Param details body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIError "Missing fullName or email"
// @Failure 401 {object} dto.APIError
// @Failure 409 {object} dto.APIError "Email or mobile number already taken"
// @Failure 500 {object} dto.APIError
// @Security BearerAuth
// @Router /user/detail-update [post]
func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please enter fullName, email, mobileNumber")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			respondError(c, http.StatusConflict, "Email or mobile number already in use")
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		default:
			logger.Error("Failed to update profile", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Error updating account details")
		}
		return
	}

	logger.Info("Profile updated")
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "Account details updated successfully!")
}

// changePassword godoc
// @Summary Change password
// @Description Verifies the old password and replaces the stored hash with one of the new password.
// @Tags user
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIError "Wrong old password, or new password not different"
// @Failure 401 {object} dto.APIError
// @Failure 500 {object} dto.APIError
// @Security BearerAuth
// @Router /user/password-change [post]
func (h *userHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide oldPassword and newPassword")
		return
	}
	if req.OldPassword == req.NewPassword {
		respondError(c, http.StatusBadRequest, "New password must be different from the old password")
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "Invalid old password")
			return
		}
		logger.Error("Failed to change password", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Error changing password")
		return
	}

	logger.Info("Password changed")
	respondSuccess(c, http.StatusOK, nil, "Password changed successfully")
}

// deleteAccount godoc
// @Summary Delete the current account
// @Description Removes the authenticated user's record entirely and expires both auth cookies.
// @Tags user
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIError
// @Failure 404 {object} dto.APIError "User not found"
// @Failure 500 {object} dto.APIError
// @Security BearerAuth
// @Router /user/delete-account [post]
func (h *userHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		logger.Error("Failed to delete account", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Error deleting account")
		return
	}

	clearAuthCookies(c, h.cfg)

	logger.Info("Account deleted")
	respondSuccess(c, http.StatusOK, nil, "User deleted successfully!")
}
