package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio_backend/internal/services"
)

type PublicHandler struct {
	*BaseHandler
	publicService services.PublicService
}

func NewPublicHandler(base *BaseHandler, publicService services.PublicService) *PublicHandler {
	return &PublicHandler{
		BaseHandler:   base,
		publicService: publicService,
	}
}

func (h *PublicHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/themes", h.ListThemes)
	public := r.Group("/public")
	{
		public.GET("/:username", h.GetProfile)
		public.GET("/:username/page", h.GetPage)
	}
}

// GetProfile serves the raw public aggregate: visitor-safe profile plus
// visible items, for clients that render themselves.
func (h *PublicHandler) GetProfile(c *gin.Context) {
	profile, items, err := h.publicService.GetProfile(c.Request.Context(), h.GetDB(c), c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":  profile,
		"items": items,
	})
}

// GetPage serves the page tree rendered by the owner's selected theme.
func (h *PublicHandler) GetPage(c *gin.Context) {
	page, err := h.publicService.GetPage(c.Request.Context(), h.GetDB(c), c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PublicHandler) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": h.publicService.ListThemes()})
}
