package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"devfolio_backend/internal/auth"
	"devfolio_backend/internal/config"
	"devfolio_backend/internal/database"
	"devfolio_backend/internal/handlers"
	"devfolio_backend/internal/logger"
	"devfolio_backend/internal/middleware"
	"devfolio_backend/internal/models"
	"devfolio_backend/internal/repositories"
	"devfolio_backend/internal/routes"
	"devfolio_backend/internal/services"
	"devfolio_backend/internal/storage"
	"devfolio_backend/internal/themes"
	"devfolio_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	blobStore, err := storage.NewBlobStore(storage.Config{
		Type:        cfg.Blobstore.Type,
		Endpoint:    cfg.Blobstore.Endpoint,
		Region:      cfg.Blobstore.Region,
		AccessKey:   cfg.Blobstore.AccessKey,
		SecretKey:   cfg.Blobstore.SecretKey,
		ImageBucket: cfg.Blobstore.ImageBucket,
		RawBucket:   cfg.Blobstore.RawBucket,
		VideoBucket: cfg.Blobstore.VideoBucket,
		BaseURL:     cfg.Blobstore.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize blob store", "error", err)
	}
	logger.Info("Blob store initialized", "type", cfg.Blobstore.Type)

	registry := themes.DefaultRegistry()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	serviceContainer := initializeServices(cfg, registry, blobStore, tokens)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, registry *themes.Registry, blobStore storage.BlobStore, tokens *auth.TokenManager) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	portfolioRepo := repositories.NewPortfolioRepository()

	signTTL := time.Duration(cfg.Blobstore.SignTTL) * time.Minute

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo, tokens),
		UserService:      services.NewUserService(userRepo, registry),
		PortfolioService: services.NewPortfolioService(portfolioRepo, blobStore),
		PublicService:    services.NewPublicService(userRepo, portfolioRepo, registry),
		UploadService:    services.NewUploadService(blobStore, signTTL),
		AdminService:     services.NewAdminService(userRepo, portfolioRepo, blobStore),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:      handlers.NewUserHandler(baseHandler, container.UserService),
		PortfolioHandler: handlers.NewPortfolioHandler(baseHandler, container.PortfolioService),
		PublicHandler:    handlers.NewPublicHandler(baseHandler, container.PublicService),
		UploadHandler:    handlers.NewUploadHandler(baseHandler, container.UploadService),
		AdminHandler:     handlers.NewAdminHandler(baseHandler, container.AdminService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the super-admin account on first boot. Skipped
// when the credentials are not configured or the account already exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials not configured. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", cfg.Admin.Email).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", cfg.Admin.Email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", cfg.Admin.Email)

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}
	newAdmin := &models.User{
		Username:      username,
		Email:         cfg.Admin.Email,
		PasswordHash:  hash,
		IsSuperAdmin:  true,
		SelectedTheme: "minimalist",
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", cfg.Admin.Email)
	return tx.Commit().Error
}
