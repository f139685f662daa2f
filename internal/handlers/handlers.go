package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	PortfolioHandler *PortfolioHandler
	PublicHandler    *PublicHandler
	UploadHandler    *UploadHandler
	AdminHandler     *AdminHandler
}
