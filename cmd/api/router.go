package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shelter-backend/internal/infrastructure/cache"
	"shelter-backend/internal/shared"
	"shelter-backend/internal/shared/middleware"
	"shelter-backend/pkg/container"
)

// publicPrefixes không cần bearer token
var publicPrefixes = []string{"/api/auth/", "/health", "/metrics"}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = c.Config.Storage.MultipartMemory

	metrics := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		metrics.Middleware(),
		middleware.Authenticate(c.AuthService, publicPrefixes...),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		setupAuthRoutes(api, c)
		setupUserRoutes(api, c)
		setupAnimalRoutes(api, c)
		setupAdopterRoutes(api, c)
		setupScheduleRoutes(api, c)
		setupVolunteerRoutes(api, c)
		setupVisitRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES (public)
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/refresh", c.AuthHandler.Refresh)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	{
		users.GET("/me", c.AuthHandler.Me)
		users.POST("", middleware.RequireRole(shared.RoleAdmin), c.AuthHandler.CreateUser)
	}
}

// ========================================
// ANIMAL ROUTES
// ========================================
func setupAnimalRoutes(api *gin.RouterGroup, c *container.Container) {
	animals := api.Group("/animals")
	{
		animals.POST("", c.AnimalHandler.Create)
		animals.GET("", c.AnimalHandler.List)
		animals.GET("/available", c.AnimalHandler.ListByAvailability)
		animals.GET("/export", c.AnimalHandler.Export)
		animals.GET("/:id", c.AnimalHandler.GetByID)
		animals.PUT("/:id", c.AnimalHandler.Update)
		animals.DELETE("/:id", c.AnimalHandler.Delete)
	}
}

// ========================================
// ADOPTER ROUTES
// ========================================
func setupAdopterRoutes(api *gin.RouterGroup, c *container.Container) {
	adopters := api.Group("/adopters")
	{
		adopters.POST("", c.AdopterHandler.Create)
		adopters.GET("", c.AdopterHandler.List)
		adopters.GET("/:id", c.AdopterHandler.GetByID)
		adopters.PUT("/:id", c.AdopterHandler.Update)
		adopters.DELETE("/:id", c.AdopterHandler.Delete)
	}
}

// ========================================
// SCHEDULE ROUTES
// ========================================
func setupScheduleRoutes(api *gin.RouterGroup, c *container.Container) {
	schedules := api.Group("/schedules")
	{
		schedules.POST("", c.ScheduleHandler.Create)
		schedules.GET("", c.ScheduleHandler.List)
		schedules.GET("/:id", c.ScheduleHandler.GetByID)
		schedules.PUT("/:id", c.ScheduleHandler.Update)
		schedules.DELETE("/:id", c.ScheduleHandler.Delete)
	}
}

// ========================================
// VOLUNTEER ROUTES
// ========================================
func setupVolunteerRoutes(api *gin.RouterGroup, c *container.Container) {
	volunteers := api.Group("/volunteers")
	{
		volunteers.POST("", c.VolunteerHandler.Create)
		volunteers.GET("", c.VolunteerHandler.List)
		volunteers.GET("/:id", c.VolunteerHandler.GetByID)
		volunteers.PUT("/:id", c.VolunteerHandler.Update)
		volunteers.DELETE("/:id", c.VolunteerHandler.Delete)
	}
}

// ========================================
// SHELTER VISIT ROUTES
// ========================================
func setupVisitRoutes(api *gin.RouterGroup, c *container.Container) {
	visits := api.Group("/shelter-visits")
	{
		visits.POST("", c.VisitHandler.Create)
		visits.GET("", c.VisitHandler.List)
		visits.GET("/:id", c.VisitHandler.GetByID)
		visits.PUT("/:id", c.VisitHandler.Update)
		visits.DELETE("/:id", c.VisitHandler.Delete)
	}
}

// healthCheckHandler: 503 khi DB lỗi, Redis lỗi chỉ là degraded
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		statusCode := http.StatusOK

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		cacheStatus := "ok"
		if _, noop := appCtx.Cache.(cache.NoopCache); noop {
			cacheStatus = "disabled"
		} else if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "error: " + err.Error()
			status = "degraded"
		}

		body := gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"database": dbStatus,
				"cache":    cacheStatus,
			},
		}
		if stats, err := appCtx.DB.Stats(); err == nil {
			body["pool"] = stats
		}

		c.JSON(statusCode, body)
	}
}
