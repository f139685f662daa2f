package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio_backend/internal/services"
	"devfolio_backend/internal/services/dto"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	portfolio := r.Group("/portfolio")
	{
		portfolio.GET("", h.List)
		portfolio.POST("", h.Create)
		portfolio.PUT("/reorder", h.Reorder)
		portfolio.GET("/:id", h.Get)
		portfolio.PUT("/:id", h.Update)
		portfolio.DELETE("/:id", h.Delete)
	}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	items, err := h.portfolioService.ListItems(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	item, err := h.portfolioService.GetItem(c.Request.Context(), h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePortfolioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.portfolioService.CreateItem(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePortfolioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.portfolioService.UpdateItem(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.portfolioService.DeleteItem(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *PortfolioHandler) Reorder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReorderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	items, err := h.portfolioService.Reorder(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
