package repository

import (
	"context"
	"fmt"

	"pokereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetPokemonByCategory(ctx context.Context, categoryID int64) ([]models.Pokemon, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, c *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate("get category", err)
	}
	return &c, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return count > 0, nil
}

// GetPokemonByCategory returns the pokemon linked to the category, by id.
func (r *categoryRepository) GetPokemonByCategory(ctx context.Context, categoryID int64) ([]models.Pokemon, error) {
	var list []models.Pokemon
	if err := r.db.WithContext(ctx).
		Model(&models.Pokemon{}).
		Joins("JOIN pokemon_categories pc ON pc.pokemon_id = pokemon.id").
		Where("pc.category_id = ?", categoryID).
		Order("pokemon.id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get pokemon by category: %w", err)
	}
	return list, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *models.Category) error {
	return affected("create category", r.db.WithContext(ctx).Create(c))
}

func (r *categoryRepository) Update(ctx context.Context, c *models.Category) error {
	return affected("update category", r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{"name": c.Name}))
}

// Delete removes the category. Its pokemon links go with it.
func (r *categoryRepository) Delete(ctx context.Context, c *models.Category) error {
	return affected("delete category", r.db.WithContext(ctx).Delete(&models.Category{}, c.ID))
}
