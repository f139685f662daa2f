package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio_backend/internal/services"
	"devfolio_backend/internal/services/dto"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	upload := r.Group("/upload")
	{
		upload.POST("/sign", h.Sign)
	}
}

func (h *UploadHandler) Sign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SignUploadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.uploadService.SignUpload(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
