package repository

import (
	"context"
	"errors"
	"fmt"

	"pokereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	List(ctx context.Context) ([]models.Owner, error)
	GetByID(ctx context.Context, id int64) (*models.Owner, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetOwnersOfPokemon(ctx context.Context, pokemonID int64) ([]models.Owner, error)
	GetPokemonByOwner(ctx context.Context, ownerID int64) ([]models.Pokemon, error)
	Create(ctx context.Context, countryID int64, o *models.Owner) error
	Update(ctx context.Context, o *models.Owner) error
	Delete(ctx context.Context, o *models.Owner) error
}

type ownerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) List(ctx context.Context) ([]models.Owner, error) {
	var list []models.Owner
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	return list, nil
}

func (r *ownerRepository) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	var o models.Owner
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, translate("get owner", err)
	}
	return &o, nil
}

func (r *ownerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Owner{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("owner exists: %w", err)
	}
	return count > 0, nil
}

func (r *ownerRepository) GetOwnersOfPokemon(ctx context.Context, pokemonID int64) ([]models.Owner, error) {
	var list []models.Owner
	if err := r.db.WithContext(ctx).
		Model(&models.Owner{}).
		Joins("JOIN pokemon_owners po ON po.owner_id = owners.id").
		Where("po.pokemon_id = ?", pokemonID).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get owners of pokemon: %w", err)
	}
	return list, nil
}

func (r *ownerRepository) GetPokemonByOwner(ctx context.Context, ownerID int64) ([]models.Pokemon, error) {
	var list []models.Pokemon
	if err := r.db.WithContext(ctx).
		Model(&models.Pokemon{}).
		Joins("JOIN pokemon_owners po ON po.pokemon_id = pokemon.id").
		Where("po.owner_id = ?", ownerID).
		Order("pokemon.id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get pokemon by owner: %w", err)
	}
	return list, nil
}

// Create resolves countryID and inserts the owner in one transaction. An
// unknown country yields ErrReferentialViolation and nothing is written.
func (r *ownerRepository) Create(ctx context.Context, countryID int64, o *models.Owner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var country models.Country
		if err := tx.Select("id").First(&country, countryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("create owner: country %d: %w", countryID, ErrReferentialViolation)
			}
			return translate("create owner", err)
		}
		o.CountryID = country.ID
		return affected("create owner", tx.Omit("Country").Create(o))
	})
}

// Update replaces the owner's columns. A zero CountryID keeps the current country.
func (r *ownerRepository) Update(ctx context.Context, o *models.Owner) error {
	fields := map[string]interface{}{
		"first_name": o.FirstName,
		"last_name":  o.LastName,
		"gender":     o.Gender,
	}
	if o.CountryID != 0 {
		fields["country_id"] = o.CountryID
	}
	return affected("update owner", r.db.WithContext(ctx).
		Model(&models.Owner{}).
		Where("id = ?", o.ID).
		Updates(fields))
}

// Delete removes the owner. Its pokemon links go with it.
func (r *ownerRepository) Delete(ctx context.Context, o *models.Owner) error {
	return affected("delete owner", r.db.WithContext(ctx).Delete(&models.Owner{}, o.ID))
}
