package server

import (
	"context"

	"pokereview/database"
	"pokereview/internal/config"
	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/handler"
	"pokereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Wire builds repositories, services and handlers on top of the one store
// handle and returns the router serving them.
func Wire(cfg *config.Config, log *logger.Logger, db *gorm.DB) *gin.Engine {
	svc := service.NewServices(db, log)

	return NewRouter(RouterConfig{
		Config: cfg,
		Logger: log,

		HealthHandler: handler.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
		CategoryHandler: handler.NewCategoryHandler(svc.Categories),
		CountryHandler:  handler.NewCountryHandler(svc.Countries),
		OwnerHandler:    handler.NewOwnerHandler(svc.Owners),
		PokemonHandler:  handler.NewPokemonHandler(svc.Pokemon),
		ReviewHandler:   handler.NewReviewHandler(svc.Reviews),
		ReviewerHandler: handler.NewReviewerHandler(svc.Reviewers),
	})
}
