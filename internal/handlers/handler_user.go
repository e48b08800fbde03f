package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
	"github.com/stackforge-labs/webapp_suite/internal/middleware"
)

// userHandler handles HTTP requests for the caller's own profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
	authService portssvc.AuthSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, as portssvc.AuthSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
		authService: as,
	}
}

// registerUserRoutes registers the self-service profile routes.
func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, as portssvc.AuthSvcFacade) {
	h := newUserHandler(us, as)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getProfile)
		users.PUT("/me", h.updateProfile)
		users.DELETE("/me", h.deleteAccount)
	}
}

// getProfile godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getProfile(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), claims.Subject)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update the caller's profile
// @Description Updates full name and/or email; an email change re-checks uniqueness
// @Tags users
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email taken"
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), claims, req)
	if err != nil {
		logger.Warn("Profile update failed", slog.String("error", err.Error()))
		respondError(c, err, "Failed to update profile")
		return
	}

	logger.Info("Profile updated", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteAccount godoc
// @Summary Deactivate the caller's account
// @Description Requires the password; deactivation revokes all refresh tokens
// @Tags users
// @Accept  json
// @Produce  json
// @Param   confirmation body dto.DeleteAccountRequest true "Password confirmation"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} map[string]string "Password incorrect"
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), claims, req.Password); err != nil {
		logger.Warn("Account deletion failed", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete account")
		return
	}

	logger.Info("Account deactivated")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deactivated"})
}
