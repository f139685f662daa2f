package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio_backend/internal/services"
	"devfolio_backend/pkg/apperrors"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users", h.DeleteUser)
		admin.DELETE("/users/:id", h.DeleteUser)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, perPage := ParsePagination(c)

	resp, err := h.adminService.ListUsers(c.Request.Context(), h.GetDB(c), page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteUser accepts the target either as a path parameter or as the
// userId query parameter.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	targetID := c.Param("id")
	if targetID == "" {
		targetID = c.Query("userId")
	}
	if targetID == "" {
		h.HandleServiceError(c, apperrors.ErrInvalidOperation("admin", "userId is required"))
		return
	}

	resp, err := h.adminService.DeleteUser(c.Request.Context(), h.GetDB(c), targetID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
