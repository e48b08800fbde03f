package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
	"github.com/stackforge-labs/webapp_suite/internal/middleware"
	"github.com/stackforge-labs/webapp_suite/internal/platform/config"
)

// authHandler handles HTTP requests for the session lifecycle.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade, us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService: as,
		userService: us,
		cfg:         cfg,
	}
}

// registerPublicAuthRoutes registers the unauthenticated auth endpoints.
// The credential-bearing ones additionally run through the rate limiter.
func registerPublicAuthRoutes(rg *gin.RouterGroup, rateLimited gin.HandlerFunc, as portssvc.AuthSvcFacade, us portssvc.UserSvcFacade, cfg *config.Config) {
	h := newAuthHandler(as, us, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", rateLimited, h.login)
		auth.POST("/register", h.register)
		auth.POST("/refresh", h.refresh)
		auth.POST("/forgot-password", rateLimited, h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
	}
}

// registerProtectedAuthRoutes registers the auth endpoints that require
// a valid access token.
func registerProtectedAuthRoutes(rg *gin.RouterGroup, as portssvc.AuthSvcFacade, us portssvc.UserSvcFacade, cfg *config.Config) {
	h := newAuthHandler(as, us, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
		auth.POST("/change-password", h.changePassword)
	}
}

// login godoc
// @Summary Log in with username and password
// @Description Verifies credentials and returns an access token plus a rotating refresh token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Authentication failed"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username))
		respondError(c, err, "Failed to log in")
		return
	}

	logger.Info("Login successful", slog.String("username", req.Username))
	c.JSON(http.StatusOK, resp)
}

// register godoc
// @Summary Register a new account
// @Description Creates a USER-role account after username and email uniqueness checks
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Username or email taken"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Registration failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		respondError(c, err, "Failed to register")
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Description Validates the opaque refresh token and rotates it; the presented token stops working
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   token body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err, "Failed to refresh token")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Log out
// @Description Revokes the caller's refresh token; the access token stays valid until it expires
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// me godoc
// @Summary Get the authenticated user's details
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), claims.Subject)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePassword godoc
// @Summary Change the authenticated user's password
// @Description Verifies the current password, stores the new hash and revokes all refresh tokens
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   passwords body dto.ChangePasswordRequest true "Password change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Passwords do not match"
// @Failure 401 {object} map[string]string "Current password incorrect"
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), claims, req); err != nil {
		logger.Warn("Password change failed", slog.String("error", err.Error()))
		respondError(c, err, "Failed to change password")
		return
	}

	logger.Info("Password changed")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed"})
}

// forgotPassword godoc
// @Summary Start the password reset flow
// @Description Issues a single-use reset token for the account behind the email
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   email body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.ForgotPasswordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Email not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, err := h.authService.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		respondError(c, err, "Failed to start password reset")
		return
	}

	logger.Info("Password reset requested", slog.String("email", req.Email))

	resp := dto.ForgotPasswordResponse{Message: "Password reset token issued"}
	// The raw token is only returned in-band outside production; in
	// production it travels through the notifier alone.
	if !h.cfg.IsProduction {
		resp.ResetToken = token
	}
	c.JSON(http.StatusOK, resp)
}

// resetPassword godoc
// @Summary Redeem a reset token for a new password
// @Description Single use: redemption clears the token and revokes all refresh tokens
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   reset body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Passwords do not match"
// @Failure 401 {object} map[string]string "Invalid or expired reset token"
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		logger.Warn("Password reset failed", slog.String("error", err.Error()))
		respondError(c, err, "Failed to reset password")
		return
	}

	logger.Info("Password reset completed")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset"})
}
