package service

import (
	"context"
	"fmt"

	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/repository"

	"github.com/shopspring/decimal"
)

type PokemonService interface {
	List(ctx context.Context) ([]models.Pokemon, error)
	GetByID(ctx context.Context, id int64) (*models.Pokemon, error)
	GetByName(ctx context.Context, name string) (*models.Pokemon, error)
	GetRating(ctx context.Context, id int64) (decimal.Decimal, error)
	Create(ctx context.Context, ownerID, categoryID int64, p *models.Pokemon) error
	Update(ctx context.Context, id int64, p *models.Pokemon) error
	Delete(ctx context.Context, id int64) error
}

type pokemonService struct {
	repo repository.PokemonRepository
	log  *logger.Logger
}

func NewPokemonService(r repository.PokemonRepository, log *logger.Logger) PokemonService {
	return &pokemonService{repo: r, log: log}
}

func (s *pokemonService) List(ctx context.Context) ([]models.Pokemon, error) {
	list, err := s.repo.List(ctx)
	return list, logFailure(s.log, "list pokemon", err)
}

func (s *pokemonService) GetByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	p, err := s.repo.GetByID(ctx, id)
	return p, logFailure(s.log, "get pokemon", err, "pokemon_id", id)
}

func (s *pokemonService) GetByName(ctx context.Context, name string) (*models.Pokemon, error) {
	p, err := s.repo.GetByName(ctx, name)
	return p, logFailure(s.log, "get pokemon by name", err, "name", name)
}

// GetRating is ErrNotFound for an unknown pokemon and zero for one without reviews.
func (s *pokemonService) GetRating(ctx context.Context, id int64) (decimal.Decimal, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err := requireExists(ok, err, "pokemon", id); err != nil {
		return decimal.Zero, logFailure(s.log, "get pokemon rating", err, "pokemon_id", id)
	}
	rating, err := s.repo.GetRating(ctx, id)
	return rating, logFailure(s.log, "get pokemon rating", err, "pokemon_id", id)
}

func (s *pokemonService) Create(ctx context.Context, ownerID, categoryID int64, p *models.Pokemon) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return logFailure(s.log, "create pokemon", err)
	}
	if containsName(existing, p.Name, func(x models.Pokemon) string { return x.Name }) {
		return fmt.Errorf("pokemon %q: %w", p.Name, ErrDuplicateEntry)
	}
	err = s.repo.Create(ctx, ownerID, categoryID, p)
	return logFailure(s.log, "create pokemon", err, "name", p.Name, "owner_id", ownerID, "category_id", categoryID)
}

func (s *pokemonService) Update(ctx context.Context, id int64, p *models.Pokemon) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := requireExists(ok, err, "pokemon", id); err != nil {
		return logFailure(s.log, "update pokemon", err, "pokemon_id", id)
	}
	p.ID = id
	return logFailure(s.log, "update pokemon", s.repo.Update(ctx, p), "pokemon_id", id)
}

// Delete removes the pokemon and every review of it as one unit.
func (s *pokemonService) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return logFailure(s.log, "delete pokemon", err, "pokemon_id", id)
	}
	return logFailure(s.log, "delete pokemon", s.repo.DeleteWithReviews(ctx, p), "pokemon_id", id)
}
