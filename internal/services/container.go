package services

// ServiceContainer bundles all services for wiring handlers at startup.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	PortfolioService PortfolioService
	PublicService    PublicService
	UploadService    UploadService
	AdminService     AdminService
}
