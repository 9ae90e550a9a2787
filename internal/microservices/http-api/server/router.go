package server

import (
	"pokereview/internal/config"
	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/handler"
	"pokereview/internal/microservices/http-api/middleware"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Config *config.Config
	Logger *logger.Logger

	HealthHandler   *handler.HealthHandler
	CategoryHandler *handler.CategoryHandler
	CountryHandler  *handler.CountryHandler
	OwnerHandler    *handler.OwnerHandler
	PokemonHandler  *handler.PokemonHandler
	ReviewHandler   *handler.ReviewHandler
	ReviewerHandler *handler.ReviewerHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.CORS(cfg.Config.CORSOrigins))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthz", cfg.HealthHandler.Check)

	// ===============
	// || API       ||
	// ===============
	api := router.Group("/api")
	api.Use(middleware.NewRateLimiter(cfg.Config.RateLimitRPS, cfg.Config.RateLimitBurst).Middleware())
	api.Use(middleware.Timeout(cfg.Config.RequestTimeout))

	cfg.PokemonHandler.RegisterRoutes(api)
	cfg.CategoryHandler.RegisterRoutes(api)
	cfg.CountryHandler.RegisterRoutes(api)
	cfg.OwnerHandler.RegisterRoutes(api)
	cfg.ReviewHandler.RegisterRoutes(api)
	cfg.ReviewerHandler.RegisterRoutes(api)

	return router
}
