package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/user_account_app/internal/apperrors"
	"github.com/SscSPs/user_account_app/internal/core/domain"
	portssvc "github.com/SscSPs/user_account_app/internal/core/ports/services"
	"github.com/SscSPs/user_account_app/internal/dto"
	"github.com/SscSPs/user_account_app/internal/middleware"
	"github.com/SscSPs/user_account_app/internal/platform/config"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Creates a user account. Username, email and mobile number must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.RegisterUserRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse}
// @Failure 400 {object} dto.APIError "Missing or malformed fields"
// @Failure 409 {object} dto.APIError "Username, email or mobile number already taken"
// @Failure 500 {object} dto.APIError
// @Router /user/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondError(c, http.StatusConflict, "User already exists")
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Error creating user")
		return
	}

	// Signup issues both tokens and persists the refresh token, but sets no
	// cookies; the client logs in explicitly afterwards.
	if _, _, err := h.issueTokenPair(c, user); err != nil {
		logger.Error("Failed to issue tokens after signup", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Error generating tokens")
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	respondSuccess(c, http.StatusCreated, dto.RegisterResponse{User: dto.ToUserResponse(user)}, "Successfully created user!")
}

// Login godoc
// @Summary Log a user in
// @Description Authenticates by email or username plus password. Sets access and refresh tokens as HTTP-only cookies and returns them in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIError "Missing identifier or password"
// @Failure 401 {object} dto.APIError "Invalid credentials"
// @Failure 500 {object} dto.APIError
// @Router /user/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide email/username and password")
		return
	}
	if req.Email == "" && req.Username == "" {
		respondError(c, http.StatusBadRequest, "Please provide email/username and password")
		return
	}

	// Unknown identity and wrong password are deliberately the same answer.
	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			respondError(c, http.StatusUnauthorized, "Invalid email/username or password")
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Error logging in")
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(c, user)
	if err != nil {
		logger.Error("Failed to issue tokens on login", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Error generating tokens")
		return
	}

	setAuthCookies(c, h.cfg, accessToken, refreshToken)

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "User logged in successfully")
}

// Logout godoc
// @Summary Log the current user out
// @Description Clears the stored refresh token and expires both auth cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIError
// @Failure 500 {object} dto.APIError
// @Security BearerAuth
// @Router /user/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to clear refresh token", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Error logging out")
		return
	}

	clearAuthCookies(c, h.cfg)

	logger.Info("User logged out")
	respondSuccess(c, http.StatusOK, nil, "User logged out")
}

// issueTokenPair generates both tokens and persists the refresh token on the
// user record. Signup and login share this path.
func (h *AuthHandler) issueTokenPair(c *gin.Context, user *domain.User) (string, string, error) {
	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		return "", "", err
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		return "", "", err
	}
	if err := h.userService.PersistRefreshToken(c.Request.Context(), user.UserID, refreshToken); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// setAuthCookies sets both tokens as HttpOnly, Secure, SameSite=None cookies.
func setAuthCookies(c *gin.Context, cfg *config.Config, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cfg.AccessTokenCookieName, accessToken, int(cfg.AccessTokenExpiryDuration.Seconds()), "/", "", true, true)
	c.SetCookie(cfg.RefreshTokenCookieName, refreshToken, int(cfg.RefreshTokenExpiryDuration.Seconds()), "/", "", true, true)
}

// clearAuthCookies expires both auth cookies.
func clearAuthCookies(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cfg.AccessTokenCookieName, "", -1, "/", "", true, true)
	c.SetCookie(cfg.RefreshTokenCookieName, "", -1, "/", "", true, true)
}
