package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"golden-seed.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	generateHandler *handlers.GenerateHandler
	verifyHandler   *handlers.VerifyHandler
	statsHandler    *handlers.StatsHandler
	healthHandler   *handlers.HealthHandler
	adminHandler    *handlers.AdminHandler // nil when admin access is not configured
	apiKeyAuth      gin.HandlerFunc
	adminAuth       gin.HandlerFunc
}

func registerRootRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/", d.healthHandler.Root)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Public routes
		v1.GET("/health", d.healthHandler.Health)
		v1.GET("/verify/:hash_prefix", d.verifyHandler.Verify)
		v1.GET("/stats/coinflip", d.statsHandler.CoinFlip)

		// Metered routes (API key required)
		metered := v1.Group("")
		metered.Use(d.apiKeyAuth)
		{
			metered.POST("/generate", d.generateHandler.Generate)
			metered.POST("/batch", d.generateHandler.BatchGenerate)
		}

		// Admin routes (JWT required, login public)
		if d.adminHandler != nil {
			admin := v1.Group("/admin")
			{
				admin.POST("/login", d.adminHandler.Login)

				protected := admin.Group("")
				protected.Use(d.adminAuth)
				{
					protected.POST("/users", d.adminHandler.CreateUser)
					protected.POST("/subscriptions", d.adminHandler.CreateSubscription)
					protected.POST("/api-keys", d.adminHandler.CreateApiKey)
					protected.GET("/users/:user_id/usage", d.adminHandler.GetUsage)
				}
			}
		}
	}
}
