package service

import (
	"context"
	"fmt"

	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/repository"
)

type CountryService interface {
	List(ctx context.Context) ([]models.Country, error)
	GetByID(ctx context.Context, id int64) (*models.Country, error)
	GetByOwner(ctx context.Context, ownerID int64) (*models.Country, error)
	GetOwners(ctx context.Context, countryID int64) ([]models.Owner, error)
	Create(ctx context.Context, c *models.Country) error
	Update(ctx context.Context, id int64, c *models.Country) error
	Delete(ctx context.Context, id int64) error
}

type countryService struct {
	repo repository.CountryRepository
	log  *logger.Logger
}

func NewCountryService(r repository.CountryRepository, log *logger.Logger) CountryService {
	return &countryService{repo: r, log: log}
}

func (s *countryService) List(ctx context.Context) ([]models.Country, error) {
	list, err := s.repo.List(ctx)
	return list, logFailure(s.log, "list countries", err)
}

func (s *countryService) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	c, err := s.repo.GetByID(ctx, id)
	return c, logFailure(s.log, "get country", err, "country_id", id)
}

// GetByOwner returns ErrNotFound when the owner does not exist.
func (s *countryService) GetByOwner(ctx context.Context, ownerID int64) (*models.Country, error) {
	c, err := s.repo.GetCountryByOwner(ctx, ownerID)
	return c, logFailure(s.log, "get country by owner", err, "owner_id", ownerID)
}

func (s *countryService) GetOwners(ctx context.Context, countryID int64) ([]models.Owner, error) {
	ok, err := s.repo.Exists(ctx, countryID)
	if err := requireExists(ok, err, "country", countryID); err != nil {
		return nil, logFailure(s.log, "get owners from country", err, "country_id", countryID)
	}
	list, err := s.repo.GetOwnersFromCountry(ctx, countryID)
	return list, logFailure(s.log, "get owners from country", err, "country_id", countryID)
}

func (s *countryService) Create(ctx context.Context, c *models.Country) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return logFailure(s.log, "create country", err)
	}
	if containsName(existing, c.Name, func(x models.Country) string { return x.Name }) {
		return fmt.Errorf("country %q: %w", c.Name, ErrDuplicateEntry)
	}
	return logFailure(s.log, "create country", s.repo.Create(ctx, c), "name", c.Name)
}

func (s *countryService) Update(ctx context.Context, id int64, c *models.Country) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := requireExists(ok, err, "country", id); err != nil {
		return logFailure(s.log, "update country", err, "country_id", id)
	}
	c.ID = id
	return logFailure(s.log, "update country", s.repo.Update(ctx, c), "country_id", id)
}

// Delete fails with ErrReferentialViolation while owners still reference the country.
func (s *countryService) Delete(ctx context.Context, id int64) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return logFailure(s.log, "delete country", err, "country_id", id)
	}
	return logFailure(s.log, "delete country", s.repo.Delete(ctx, c), "country_id", id)
}
