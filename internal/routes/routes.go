package routes

import (
	"github.com/gin-gonic/gin"

	"devfolio_backend/internal/auth"
	"devfolio_backend/internal/handlers"
	"devfolio_backend/internal/middleware"
)

// RegisterRoutes registers all HTTP routes. Public endpoints carry no
// auth; owner endpoints require a valid token; admin endpoints
// additionally require the super-admin claim.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.PublicHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(tokens))
		{
			appHandlers.UserHandler.RegisterRoutes(protected)
			appHandlers.PortfolioHandler.RegisterRoutes(protected)
			appHandlers.UploadHandler.RegisterRoutes(protected)
		}

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(tokens), middleware.AdminMiddleware())
		{
			appHandlers.AdminHandler.RegisterRoutes(admin)
		}
	}
}
