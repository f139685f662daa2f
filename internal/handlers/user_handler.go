package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio_backend/internal/services"
	"devfolio_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/me")
	{
		me.GET("", h.GetProfile)
		me.PUT("", h.UpdateProfile)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
