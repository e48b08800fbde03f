package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
	"github.com/stackforge-labs/webapp_suite/internal/middleware"
)

// adminHandler handles privileged user-management requests. The route
// group already gates on the ADMIN role; the service layer re-checks.
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

// newAdminHandler creates a new adminHandler.
func newAdminHandler(as portssvc.AdminSvcFacade) *adminHandler {
	return &adminHandler{adminService: as}
}

// registerAdminRoutes registers the admin-only user-management routes.
func registerAdminRoutes(rg *gin.RouterGroup, as portssvc.AdminSvcFacade) {
	h := newAdminHandler(as)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.PUT("/:id/role", h.setUserRole)
		users.PATCH("/:id/status", h.toggleUserStatus)
	}
}

// listUsers godoc
// @Summary List all users
// @Tags admin
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.adminService.ListUsers(c.Request.Context(), claims, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// setUserRole godoc
// @Summary Change a user's role
// @Description Changing a role revokes the target's refresh tokens
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   role body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Unknown role"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/users/{id}/role [put]
func (h *adminHandler) setUserRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.adminService.SetUserRole(c.Request.Context(), claims, c.Param("id"), req.Role)
	if err != nil {
		logger.Warn("Role change failed", slog.String("target_id", c.Param("id")), slog.String("error", err.Error()))
		respondError(c, err, "Failed to change role")
		return
	}

	logger.Info("Role changed", slog.String("target_id", user.UserID), slog.String("role", string(user.Role)))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// toggleUserStatus godoc
// @Summary Toggle a user's active flag
// @Description Deactivation revokes the target's refresh tokens
// @Tags admin
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/users/{id}/status [patch]
func (h *adminHandler) toggleUserStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.adminService.ToggleUserStatus(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		logger.Warn("Status toggle failed", slog.String("target_id", c.Param("id")), slog.String("error", err.Error()))
		respondError(c, err, "Failed to toggle status")
		return
	}

	logger.Info("Status toggled", slog.String("target_id", user.UserID), slog.Bool("is_active", user.IsActive))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
