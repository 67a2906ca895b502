package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wealthcoach_backend/database"
	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/config"
	"wealthcoach_backend/internal/email"
	"wealthcoach_backend/internal/handlers"
	"wealthcoach_backend/internal/logger"
	"wealthcoach_backend/internal/middleware"
	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/routes"
	"wealthcoach_backend/internal/services"
	"wealthcoach_backend/internal/storage"
	"wealthcoach_backend/internal/validator"
	"wealthcoach_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedRoles(gormDB); err != nil {
		logger.Fatal("Failed to seed roles", "error", err)
	}
	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	cleanupWorker := workers.NewTokenCleanupWorker(gormDB, repositories.NewUserRepository())
	cleanupWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, services, handlers and middleware into a ready
// gin engine. Tests call it directly with their own config and database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokenIssuer := auth.NewTokenIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	emailProvider := buildEmailProvider(cfg)

	userRepo := repositories.NewUserRepository()

	serviceContainer := initializeServices(cfg, storageInstance, tokenIssuer, emailProvider, userRepo)
	appHandlers := initializeHandlers(serviceContainer, tokenIssuer, userRepo)

	ginRouter := initializeGinRouter(gormDB)

	authMiddleware := middleware.AuthMiddleware(tokenIssuer, userRepo)
	adminMiddleware := middleware.AdminMiddleware()
	routes.RegisterRoutes(ginRouter, appHandlers, authMiddleware, adminMiddleware)

	return ginRouter
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, outgoing email is disabled")
		return email.NewNoopProvider()
	}

	renderer, err := email.NewHTMLRenderer()
	if err != nil {
		logger.Fatal("Failed to initialize email templates", "error", err)
	}
	if cfg.Email.TemplatesDir != "" {
		// Missing directory keeps the built-in templates.
		if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("Custom email templates not loaded", "dir", cfg.Email.TemplatesDir, "error", err)
		}
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUsername,
		Password:    cfg.Email.SMTPPassword,
		FromEmail:   cfg.Email.FromEmail,
		FromName:    cfg.Email.FromName,
		FrontendURL: cfg.Email.FrontendURL,
	}, renderer)
}

func initializeServices(
	cfg *config.Config,
	storageInstance storage.Storage,
	tokenIssuer *auth.TokenIssuer,
	emailProvider email.Provider,
	userRepo repositories.UserRepository,
) *services.ServiceContainer {
	personalRepo := repositories.NewPersonalDetailsRepository()
	clientDataRepo := repositories.NewClientDataRepository()
	documentRepo := repositories.NewDocumentRepository()
	formRepo := repositories.NewFormRepository()

	return &services.ServiceContainer{
		Auth:              services.NewAuthService(userRepo, tokenIssuer, emailProvider),
		User:              services.NewUserService(userRepo),
		PersonalDetails:   services.NewPersonalDetailsService(personalRepo, userRepo),
		ClientData:        services.NewClientDataService(clientDataRepo, personalRepo),
		Document:          services.NewDocumentService(documentRepo, personalRepo, storageInstance, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
		Form:              services.NewFormService(formRepo, personalRepo),
		FormConfiguration: services.NewFormConfigurationService(formRepo),
		ProfileCompletion: services.NewProfileCompletionService(personalRepo),
	}
}

func initializeHandlers(
	container *services.ServiceContainer,
	tokenIssuer *auth.TokenIssuer,
	userRepo repositories.UserRepository,
) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:              handlers.NewAuthHandler(baseHandler, container.Auth, tokenIssuer, userRepo),
		UserHandler:              handlers.NewUserHandler(baseHandler, container.User, tokenIssuer, userRepo),
		PersonalDetailsHandler:   handlers.NewPersonalDetailsHandler(baseHandler, container.PersonalDetails, container.ProfileCompletion),
		ClientDataHandler:        handlers.NewClientDataHandler(baseHandler, container.ClientData),
		DocumentHandler:          handlers.NewDocumentHandler(baseHandler, container.Document),
		FormHandler:              handlers.NewFormHandler(baseHandler, container.Form),
		FormConfigurationHandler: handlers.NewFormConfigurationHandler(baseHandler, container.FormConfiguration),
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

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	var adminRole models.Role
	if err := db.Where("name = ?", auth.RoleAdmin).First(&adminRole).Error; err != nil {
		return fmt.Errorf("failed to load admin role: %w", err)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:         adminEmail,
		PasswordHash:  hashedPassword,
		DisplayName:   "Administrator",
		EmailVerified: true,
		RoleID:        adminRole.ID,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
