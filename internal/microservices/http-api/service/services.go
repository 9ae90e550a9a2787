package service

import (
	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

// Services bundles one instance of every service over a shared store handle.
type Services struct {
	Categories CategoryService
	Countries  CountryService
	Owners     OwnerService
	Pokemon    PokemonService
	Reviews    ReviewService
	Reviewers  ReviewerService
}

func NewServices(db *gorm.DB, log *logger.Logger) *Services {
	return &Services{
		Categories: NewCategoryService(repository.NewCategoryRepository(db), log.With("service", "category")),
		Countries:  NewCountryService(repository.NewCountryRepository(db), log.With("service", "country")),
		Owners:     NewOwnerService(repository.NewOwnerRepository(db), log.With("service", "owner")),
		Pokemon:    NewPokemonService(repository.NewPokemonRepository(db), log.With("service", "pokemon")),
		Reviews:    NewReviewService(repository.NewReviewRepository(db), log.With("service", "review")),
		Reviewers:  NewReviewerService(repository.NewReviewerRepository(db), log.With("service", "reviewer")),
	}
}
