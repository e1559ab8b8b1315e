package api

import (
	authUsecase "wellness-backend/internal/auth/usecase"
	wellnessUsecase "wellness-backend/internal/wellness/usecase"
	"wellness-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	wellnessUsecase wellnessUsecase.WellnessUsecase
	config          *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, wellnessUc wellnessUsecase.WellnessUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:     authUc,
		wellnessUsecase: wellnessUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())

	// CORS allow-list for the dashboard origins
	r.Use(cors.New(cors.Config{
		AllowOrigins: h.config.AllowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Requested-With"},
	}))

	SetupRoutes(r, h.authUsecase, h.wellnessUsecase, h.config)

	return r.Run(addr)
}
