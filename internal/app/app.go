package app

import (
	"fmt"

	"storerate_backend/database"
	"storerate_backend/internal/config"
	"storerate_backend/internal/handlers"
	"storerate_backend/internal/logger"
	"storerate_backend/internal/middleware"
	"storerate_backend/internal/repositories"
	"storerate_backend/internal/routes"
	"storerate_backend/internal/services"
	"storerate_backend/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
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
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа приложением нельзя управлять - не запускаем сервер
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает gin.Engine со всеми зависимостями.
// Выделено из Run, чтобы тесты могли поднять роутер над своей БД.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	storeRepo := repositories.NewStoreRepository()
	ratingRepo := repositories.NewRatingRepository()

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo),
		UserService:      services.NewUserService(userRepo),
		StoreService:     services.NewStoreService(storeRepo, userRepo),
		RatingService:    services.NewRatingService(ratingRepo, storeRepo),
		OwnerService:     services.NewOwnerService(storeRepo, ratingRepo),
		AnalyticsService: services.NewAnalyticsService(userRepo, storeRepo, ratingRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		Auth:   handlers.NewAuthHandler(base, sc.AuthService),
		Admin:  handlers.NewAdminHandler(base, sc.UserService, sc.StoreService, sc.AnalyticsService),
		Store:  handlers.NewStoreHandler(base, sc.StoreService, sc.RatingService),
		Owner:  handlers.NewOwnerHandler(base, sc.OwnerService),
		Health: handlers.NewHealthHandler(base),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(cors.Default())
	r.Use(middleware.DBMiddleware(gormDB))

	return r
}
