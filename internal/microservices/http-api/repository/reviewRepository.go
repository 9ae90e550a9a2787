package repository

import (
	"context"
	"errors"
	"fmt"

	"pokereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]models.Review, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetReviewsOfPokemon(ctx context.Context, pokemonID int64) ([]models.Review, error)
	Create(ctx context.Context, reviewerID, pokemonID int64, rv *models.Review) error
	Update(ctx context.Context, rv *models.Review) error
	Delete(ctx context.Context, rv *models.Review) error
	DeleteReviews(ctx context.Context, reviews []models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(ctx context.Context) ([]models.Review, error) {
	var list []models.Review
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return list, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var rv models.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, translate("get review", err)
	}
	return &rv, nil
}

func (r *reviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("review exists: %w", err)
	}
	return count > 0, nil
}

func (r *reviewRepository) GetReviewsOfPokemon(ctx context.Context, pokemonID int64) ([]models.Review, error) {
	var list []models.Review
	if err := r.db.WithContext(ctx).Where("pokemon_id = ?", pokemonID).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get reviews of pokemon: %w", err)
	}
	return list, nil
}

// Create resolves the reviewer and the pokemon and inserts the review in one
// transaction. An unknown id yields ErrReferentialViolation.
func (r *reviewRepository) Create(ctx context.Context, reviewerID, pokemonID int64, rv *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reviewer models.Reviewer
		if err := tx.Select("id").First(&reviewer, reviewerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("create review: reviewer %d: %w", reviewerID, ErrReferentialViolation)
			}
			return translate("create review", err)
		}

		var pokemon models.Pokemon
		if err := tx.Select("id").First(&pokemon, pokemonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("create review: pokemon %d: %w", pokemonID, ErrReferentialViolation)
			}
			return translate("create review", err)
		}

		rv.ReviewerID = reviewer.ID
		rv.PokemonID = pokemon.ID
		return affected("create review", tx.Omit("Pokemon", "Reviewer").Create(rv))
	})
}

func (r *reviewRepository) Update(ctx context.Context, rv *models.Review) error {
	return affected("update review", r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", rv.ID).
		Updates(map[string]interface{}{
			"title":  rv.Title,
			"text":   rv.Text,
			"rating": rv.Rating,
		}))
}

func (r *reviewRepository) Delete(ctx context.Context, rv *models.Review) error {
	return affected("delete review", r.db.WithContext(ctx).Delete(&models.Review{}, rv.ID))
}

// DeleteReviews removes all given reviews in one statement. An empty slice is
// a no-op so a pokemon without reviews can still be deleted.
func (r *reviewRepository) DeleteReviews(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(reviews))
	for _, rv := range reviews {
		ids = append(ids, rv.ID)
	}
	return affected("delete reviews", r.db.WithContext(ctx).Delete(&models.Review{}, ids))
}
