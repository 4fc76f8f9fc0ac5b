package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gurumithuru/transfer-match-api/api/swagger"
	"github.com/gurumithuru/transfer-match-api/internal/handler"
	"github.com/gurumithuru/transfer-match-api/internal/middleware"
	"github.com/gurumithuru/transfer-match-api/internal/repository"
	"github.com/gurumithuru/transfer-match-api/internal/service"
	"github.com/gurumithuru/transfer-match-api/pkg/cache"
	"github.com/gurumithuru/transfer-match-api/pkg/config"
	"github.com/gurumithuru/transfer-match-api/pkg/database"
	"github.com/gurumithuru/transfer-match-api/pkg/export"
	"github.com/gurumithuru/transfer-match-api/pkg/logger"
	corsmiddleware "github.com/gurumithuru/transfer-match-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gurumithuru/transfer-match-api/pkg/middleware/requestid"
)

// @title Guru Mithuru Transfer Match API
// @version 1.0.0
// @description Mutual-transfer matchmaking for government school teachers
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The platform works without Redis, just slower dashboards.
		logr.Sugar().Warnw("redis unavailable, dashboard caching disabled", "error", err)
		redisClient = nil
	}

	metricsService := service.NewMetricsService()

	profileRepo := repository.NewProfileRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	cacheService := service.NewCacheService(cacheRepo, metricsService, cfg.Dashboard.CacheTTL, logr,
		cfg.Dashboard.CacheEnabled && redisClient != nil)
	authService := service.NewAuthService(profileRepo, nil, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	profileService := service.NewProfileService(profileRepo, cacheService, nil, logr)
	matchService := service.NewMatchService(profileRepo, metricsService, logr, cfg.Contact.WhatsAppGreeting)
	dashboardService := service.NewDashboardService(profileRepo, cacheService, logr, cfg.Dashboard.CacheTTL)
	testimonialService := service.NewTestimonialService(testimonialRepo, profileRepo, nil, logr)
	adminService := service.NewAdminService(profileRepo, testimonialRepo, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	matchHandler := handler.NewMatchHandler(matchService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	referenceHandler := handler.NewReferenceHandler()
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	adminHandler := handler.NewAdminHandler(adminService)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsService.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/reference/provinces", referenceHandler.Provinces)
		api.GET("/reference/districts", referenceHandler.Districts)
		api.GET("/reference/zones", referenceHandler.Zones)
		api.GET("/reference/options", referenceHandler.Options)

		api.GET("/testimonials", testimonialHandler.ListApproved)

		authed := api.Group("", middleware.JWT(authService))
		{
			authed.GET("/profile/me", profileHandler.Me)
			authed.PUT("/profile/me", profileHandler.Update)
			authed.GET("/matches", matchHandler.Find)
			authed.GET("/dashboard/stats", dashboardHandler.Stats)
			authed.POST("/testimonials", testimonialHandler.Submit)

			admin := authed.Group("/admin", middleware.AdminOnly())
			{
				admin.GET("/overview", adminHandler.Overview)
				admin.GET("/users", adminHandler.Users)
				admin.GET("/export", adminHandler.Export)
				admin.GET("/testimonials", testimonialHandler.ListAll)
				admin.POST("/testimonials/:id/approve", testimonialHandler.Approve)
				admin.DELETE("/testimonials/:id", testimonialHandler.Reject)
			}
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
