package service

import (
	"context"
	"fmt"

	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/repository"
)

type OwnerService interface {
	List(ctx context.Context) ([]models.Owner, error)
	GetByID(ctx context.Context, id int64) (*models.Owner, error)
	GetPokemon(ctx context.Context, ownerID int64) ([]models.Pokemon, error)
	GetOwnersOfPokemon(ctx context.Context, pokemonID int64) ([]models.Owner, error)
	Create(ctx context.Context, countryID int64, o *models.Owner) error
	Update(ctx context.Context, id int64, o *models.Owner) error
	Delete(ctx context.Context, id int64) error
}

type ownerService struct {
	repo repository.OwnerRepository
	log  *logger.Logger
}

func NewOwnerService(r repository.OwnerRepository, log *logger.Logger) OwnerService {
	return &ownerService{repo: r, log: log}
}

func (s *ownerService) List(ctx context.Context) ([]models.Owner, error) {
	list, err := s.repo.List(ctx)
	return list, logFailure(s.log, "list owners", err)
}

func (s *ownerService) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	o, err := s.repo.GetByID(ctx, id)
	return o, logFailure(s.log, "get owner", err, "owner_id", id)
}

func (s *ownerService) GetPokemon(ctx context.Context, ownerID int64) ([]models.Pokemon, error) {
	ok, err := s.repo.Exists(ctx, ownerID)
	if err := requireExists(ok, err, "owner", ownerID); err != nil {
		return nil, logFailure(s.log, "get pokemon by owner", err, "owner_id", ownerID)
	}
	list, err := s.repo.GetPokemonByOwner(ctx, ownerID)
	return list, logFailure(s.log, "get pokemon by owner", err, "owner_id", ownerID)
}

func (s *ownerService) GetOwnersOfPokemon(ctx context.Context, pokemonID int64) ([]models.Owner, error) {
	list, err := s.repo.GetOwnersOfPokemon(ctx, pokemonID)
	return list, logFailure(s.log, "get owners of pokemon", err, "pokemon_id", pokemonID)
}

// Create rejects a first name already taken and an unknown country.
func (s *ownerService) Create(ctx context.Context, countryID int64, o *models.Owner) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return logFailure(s.log, "create owner", err)
	}
	if containsName(existing, o.FirstName, func(x models.Owner) string { return x.FirstName }) {
		return fmt.Errorf("owner %q: %w", o.FirstName, ErrDuplicateEntry)
	}
	return logFailure(s.log, "create owner", s.repo.Create(ctx, countryID, o), "first_name", o.FirstName, "country_id", countryID)
}

func (s *ownerService) Update(ctx context.Context, id int64, o *models.Owner) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := requireExists(ok, err, "owner", id); err != nil {
		return logFailure(s.log, "update owner", err, "owner_id", id)
	}
	o.ID = id
	return logFailure(s.log, "update owner", s.repo.Update(ctx, o), "owner_id", id)
}

func (s *ownerService) Delete(ctx context.Context, id int64) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return logFailure(s.log, "delete owner", err, "owner_id", id)
	}
	return logFailure(s.log, "delete owner", s.repo.Delete(ctx, o), "owner_id", id)
}
