package service

import (
	"context"
	"fmt"

	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/repository"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetPokemon(ctx context.Context, categoryID int64) ([]models.Pokemon, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, id int64, c *models.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	repo repository.CategoryRepository
	log  *logger.Logger
}

func NewCategoryService(r repository.CategoryRepository, log *logger.Logger) CategoryService {
	return &categoryService{repo: r, log: log}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	list, err := s.repo.List(ctx)
	return list, logFailure(s.log, "list categories", err)
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	return c, logFailure(s.log, "get category", err, "category_id", id)
}

func (s *categoryService) GetPokemon(ctx context.Context, categoryID int64) ([]models.Pokemon, error) {
	ok, err := s.repo.Exists(ctx, categoryID)
	if err := requireExists(ok, err, "category", categoryID); err != nil {
		return nil, logFailure(s.log, "get pokemon by category", err, "category_id", categoryID)
	}
	list, err := s.repo.GetPokemonByCategory(ctx, categoryID)
	return list, logFailure(s.log, "get pokemon by category", err, "category_id", categoryID)
}

func (s *categoryService) Create(ctx context.Context, c *models.Category) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return logFailure(s.log, "create category", err)
	}
	if containsName(existing, c.Name, func(x models.Category) string { return x.Name }) {
		return fmt.Errorf("category %q: %w", c.Name, ErrDuplicateEntry)
	}
	return logFailure(s.log, "create category", s.repo.Create(ctx, c), "name", c.Name)
}

func (s *categoryService) Update(ctx context.Context, id int64, c *models.Category) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := requireExists(ok, err, "category", id); err != nil {
		return logFailure(s.log, "update category", err, "category_id", id)
	}
	c.ID = id
	return logFailure(s.log, "update category", s.repo.Update(ctx, c), "category_id", id)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return logFailure(s.log, "delete category", err, "category_id", id)
	}
	return logFailure(s.log, "delete category", s.repo.Delete(ctx, c), "category_id", id)
}
