package service

import (
	"context"
	"fmt"

	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/repository"
)

type ReviewService interface {
	List(ctx context.Context) ([]models.Review, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	GetReviewsOfPokemon(ctx context.Context, pokemonID int64) ([]models.Review, error)
	Create(ctx context.Context, reviewerID, pokemonID int64, rv *models.Review) error
	Update(ctx context.Context, id int64, rv *models.Review) error
	Delete(ctx context.Context, id int64) error
}

type reviewService struct {
	repo repository.ReviewRepository
	log  *logger.Logger
}

func NewReviewService(r repository.ReviewRepository, log *logger.Logger) ReviewService {
	return &reviewService{repo: r, log: log}
}

func validRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("rating %d: %w", rating, ErrInvalidRating)
	}
	return nil
}

func (s *reviewService) List(ctx context.Context) ([]models.Review, error) {
	list, err := s.repo.List(ctx)
	return list, logFailure(s.log, "list reviews", err)
}

func (s *reviewService) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	rv, err := s.repo.GetByID(ctx, id)
	return rv, logFailure(s.log, "get review", err, "review_id", id)
}

func (s *reviewService) GetReviewsOfPokemon(ctx context.Context, pokemonID int64) ([]models.Review, error) {
	list, err := s.repo.GetReviewsOfPokemon(ctx, pokemonID)
	return list, logFailure(s.log, "get reviews of pokemon", err, "pokemon_id", pokemonID)
}

func (s *reviewService) Create(ctx context.Context, reviewerID, pokemonID int64, rv *models.Review) error {
	if err := validRating(rv.Rating); err != nil {
		return err
	}
	existing, err := s.repo.List(ctx)
	if err != nil {
		return logFailure(s.log, "create review", err)
	}
	if containsName(existing, rv.Title, func(x models.Review) string { return x.Title }) {
		return fmt.Errorf("review %q: %w", rv.Title, ErrDuplicateEntry)
	}
	err = s.repo.Create(ctx, reviewerID, pokemonID, rv)
	return logFailure(s.log, "create review", err, "title", rv.Title, "reviewer_id", reviewerID, "pokemon_id", pokemonID)
}

func (s *reviewService) Update(ctx context.Context, id int64, rv *models.Review) error {
	if err := validRating(rv.Rating); err != nil {
		return err
	}
	ok, err := s.repo.Exists(ctx, id)
	if err := requireExists(ok, err, "review", id); err != nil {
		return logFailure(s.log, "update review", err, "review_id", id)
	}
	rv.ID = id
	return logFailure(s.log, "update review", s.repo.Update(ctx, rv), "review_id", id)
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return logFailure(s.log, "delete review", err, "review_id", id)
	}
	return logFailure(s.log, "delete review", s.repo.Delete(ctx, rv), "review_id", id)
}
