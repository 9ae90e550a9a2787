package repository

import (
	"context"
	"fmt"

	"pokereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CountryRepository interface {
	List(ctx context.Context) ([]models.Country, error)
	GetByID(ctx context.Context, id int64) (*models.Country, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetCountryByOwner(ctx context.Context, ownerID int64) (*models.Country, error)
	GetOwnersFromCountry(ctx context.Context, countryID int64) ([]models.Owner, error)
	Create(ctx context.Context, c *models.Country) error
	Update(ctx context.Context, c *models.Country) error
	Delete(ctx context.Context, c *models.Country) error
}

type countryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) List(ctx context.Context) ([]models.Country, error) {
	var list []models.Country
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return list, nil
}

func (r *countryRepository) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	var c models.Country
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate("get country", err)
	}
	return &c, nil
}

func (r *countryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Country{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("country exists: %w", err)
	}
	return count > 0, nil
}

func (r *countryRepository) GetCountryByOwner(ctx context.Context, ownerID int64) (*models.Country, error) {
	var c models.Country
	if err := r.db.WithContext(ctx).
		Joins("JOIN owners o ON o.country_id = countries.id").
		Where("o.id = ?", ownerID).
		First(&c).Error; err != nil {
		return nil, translate("get country by owner", err)
	}
	return &c, nil
}

func (r *countryRepository) GetOwnersFromCountry(ctx context.Context, countryID int64) ([]models.Owner, error) {
	var list []models.Owner
	if err := r.db.WithContext(ctx).Where("country_id = ?", countryID).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get owners from country: %w", err)
	}
	return list, nil
}

func (r *countryRepository) Create(ctx context.Context, c *models.Country) error {
	return affected("create country", r.db.WithContext(ctx).Create(c))
}

func (r *countryRepository) Update(ctx context.Context, c *models.Country) error {
	return affected("update country", r.db.WithContext(ctx).
		Model(&models.Country{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{"name": c.Name}))
}

// Delete removes the country. It fails with ErrReferentialViolation while
// owners still live there.
func (r *countryRepository) Delete(ctx context.Context, c *models.Country) error {
	return affected("delete country", r.db.WithContext(ctx).Delete(&models.Country{}, c.ID))
}
