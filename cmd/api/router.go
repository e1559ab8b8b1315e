package api

import (
	"net/http"
	"path/filepath"
	"strings"

	authDelivery "wellness-backend/internal/auth/delivery"
	authUsecase "wellness-backend/internal/auth/usecase"
	wellnessDelivery "wellness-backend/internal/wellness/delivery"
	wellnessUsecase "wellness-backend/internal/wellness/usecase"
	"wellness-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, wellnessUc wellnessUsecase.WellnessUsecase, cfg *config.Config) {
	authHandler := authDelivery.NewAuthHandler(authUc, cfg.DashboardOrigin)
	wellnessHandler := wellnessDelivery.NewWellnessHandler(wellnessUc)

	// OAuth2 flow endpoints; paths are fixed by the registered redirect URI
	auth := r.Group("/auth")
	{
		auth.GET("/authorize", authHandler.Authorize)
		auth.GET("/callback", authHandler.Callback)
		auth.GET("/status", authHandler.Status)
	}

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/wellness-data", wellnessHandler.GetWellnessData)
		api.GET("/available-attributes", wellnessHandler.GetAvailableAttributes)
	}

	// Serve the dashboard build, falling back to index.html so client-side
	// routing works.
	r.Static("/static", filepath.Join(cfg.StaticDir, "static"))
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})
}
