package app

import (
	"context"
	"fmt"
	"time"

	"jobstreet_backend/internal/cache"
	"jobstreet_backend/internal/config"
	"jobstreet_backend/internal/database"
	"jobstreet_backend/internal/email"
	"jobstreet_backend/internal/handlers"
	"jobstreet_backend/internal/logger"
	"jobstreet_backend/internal/middleware"
	"jobstreet_backend/internal/repositories"
	"jobstreet_backend/internal/routes"
	"jobstreet_backend/internal/services"
	"jobstreet_backend/internal/validator"
	"jobstreet_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, gormDB)

	// Background stats reconciliation runs for the lifetime of the
	// process.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	statsWorker := workers.NewStatsWorker(
		repositories.NewJobStatRepository(gormDB),
		time.Duration(cfg.StatsWorker.IntervalMinutes)*time.Minute,
	)
	statsWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and middleware
// into a ready gin engine. Tests call it directly over a test DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	cacheInstance := cache.New(cfg)
	emailProvider := email.NewProvider(cfg)

	serviceContainer := initializeServices(gormDB, cacheInstance, emailProvider)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB, cacheInstance *cache.Cache, emailProvider email.Provider) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	bookmarkRepo := repositories.NewBookmarkRepository(gormDB)
	interviewRepo := repositories.NewInterviewRepository(gormDB)
	skillRepo := repositories.NewSkillRepository(gormDB)
	statRepo := repositories.NewJobStatRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo),
		JobService:         services.NewJobService(jobRepo, companyRepo, statRepo, cacheInstance),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, userRepo, emailProvider),
		BookmarkService:    services.NewBookmarkService(bookmarkRepo, jobRepo),
		InterviewService:   services.NewInterviewService(interviewRepo, jobRepo, companyRepo),
		CompanyService:     services.NewCompanyService(companyRepo),
		SkillService:       services.NewSkillService(skillRepo, jobRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, sc.AuthService),
		JobHandler:         handlers.NewJobHandler(base, sc.JobService, sc.SkillService),
		ApplicationHandler: handlers.NewApplicationHandler(base, sc.ApplicationService),
		BookmarkHandler:    handlers.NewBookmarkHandler(base, sc.BookmarkService),
		InterviewHandler:   handlers.NewInterviewHandler(base, sc.InterviewService),
		CompanyHandler:     handlers.NewCompanyHandler(base, sc.CompanyService),
		SkillHandler:       handlers.NewSkillHandler(base, sc.SkillService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)
	return ginRouter
}
