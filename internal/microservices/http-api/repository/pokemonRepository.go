package repository

import (
	"context"
	"errors"
	"fmt"

	"pokereview/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PokemonRepository interface {
	List(ctx context.Context) ([]models.Pokemon, error)
	GetByID(ctx context.Context, id int64) (*models.Pokemon, error)
	GetByName(ctx context.Context, name string) (*models.Pokemon, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetRating(ctx context.Context, pokemonID int64) (decimal.Decimal, error)
	Create(ctx context.Context, ownerID, categoryID int64, p *models.Pokemon) error
	Update(ctx context.Context, p *models.Pokemon) error
	Delete(ctx context.Context, p *models.Pokemon) error
	DeleteWithReviews(ctx context.Context, p *models.Pokemon) error
}

// ratingAggregate receives the COUNT/SUM row for a pokemon's reviews.
type ratingAggregate struct {
	Count int64
	Total int64
}

type pokemonRepository struct {
	db *gorm.DB
}

func NewPokemonRepository(db *gorm.DB) PokemonRepository {
	return &pokemonRepository{db: db}
}

// List returns every pokemon ordered by id ascending.
func (r *pokemonRepository) List(ctx context.Context) ([]models.Pokemon, error) {
	var list []models.Pokemon
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return list, nil
}

func (r *pokemonRepository) GetByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	var p models.Pokemon
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate("get pokemon", err)
	}
	return &p, nil
}

func (r *pokemonRepository) GetByName(ctx context.Context, name string) (*models.Pokemon, error) {
	var p models.Pokemon
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		return nil, translate("get pokemon by name", err)
	}
	return &p, nil
}

func (r *pokemonRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Pokemon{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("pokemon exists: %w", err)
	}
	return count > 0, nil
}

// GetRating returns the mean rating of the pokemon's reviews, or zero when it
// has none. The division is decimal so 3 and 4 give exactly 3.5.
func (r *pokemonRepository) GetRating(ctx context.Context, pokemonID int64) (decimal.Decimal, error) {
	var agg ratingAggregate
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS total").
		Where("pokemon_id = ?", pokemonID).
		Scan(&agg).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("get pokemon rating: %w", err)
	}
	if agg.Count == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromInt(agg.Total).Div(decimal.NewFromInt(agg.Count)), nil
}

// Create persists the pokemon together with one owner link and one category
// link. Both ids must resolve, otherwise ErrReferentialViolation is returned
// and nothing is written.
func (r *pokemonRepository) Create(ctx context.Context, ownerID, categoryID int64, p *models.Pokemon) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.Select("id").First(&owner, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("create pokemon: owner %d: %w", ownerID, ErrReferentialViolation)
			}
			return translate("create pokemon", err)
		}

		var category models.Category
		if err := tx.Select("id").First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("create pokemon: category %d: %w", categoryID, ErrReferentialViolation)
			}
			return translate("create pokemon", err)
		}

		if err := affected("create pokemon", tx.Create(p)); err != nil {
			return err
		}
		if err := affected("create pokemon owner", tx.Create(&models.PokemonOwner{
			PokemonID: p.ID,
			OwnerID:   owner.ID,
		})); err != nil {
			return err
		}
		return affected("create pokemon category", tx.Create(&models.PokemonCategory{
			PokemonID:  p.ID,
			CategoryID: category.ID,
		}))
	})
}

func (r *pokemonRepository) Update(ctx context.Context, p *models.Pokemon) error {
	return affected("update pokemon", r.db.WithContext(ctx).
		Model(&models.Pokemon{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":       p.Name,
			"birth_date": p.BirthDate,
		}))
}

// Delete removes the pokemon row only. While reviews reference it the store
// refuses and ErrReferentialViolation is returned; see DeleteWithReviews.
func (r *pokemonRepository) Delete(ctx context.Context, p *models.Pokemon) error {
	return affected("delete pokemon", r.db.WithContext(ctx).Delete(&models.Pokemon{}, p.ID))
}

// DeleteWithReviews removes the pokemon's reviews and then the pokemon in a
// single transaction.
func (r *pokemonRepository) DeleteWithReviews(ctx context.Context, p *models.Pokemon) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pokemon_id = ?", p.ID).Delete(&models.Review{}).Error; err != nil {
			return translate("delete pokemon reviews", err)
		}
		return affected("delete pokemon", tx.Delete(&models.Pokemon{}, p.ID))
	})
}
