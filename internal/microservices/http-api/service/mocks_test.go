package service_test

import (
	"context"

	"pokereview/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- MOCK REPOSITORIES ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) GetPokemonByCategory(ctx context.Context, categoryID int64) ([]models.Pokemon, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) List(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockCountryRepository) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCountryRepository) GetCountryByOwner(ctx context.Context, ownerID int64) (*models.Country, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryRepository) GetOwnersFromCountry(ctx context.Context, countryID int64) ([]models.Owner, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).([]models.Owner), args.Error(1)
}

func (m *MockCountryRepository) Create(ctx context.Context, c *models.Country) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCountryRepository) Update(ctx context.Context, c *models.Country) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, c *models.Country) error {
	return m.Called(ctx, c).Error(0)
}

type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) List(ctx context.Context) ([]models.Owner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Owner), args.Error(1)
}

func (m *MockOwnerRepository) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Owner), args.Error(1)
}

func (m *MockOwnerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnerRepository) GetOwnersOfPokemon(ctx context.Context, pokemonID int64) ([]models.Owner, error) {
	args := m.Called(ctx, pokemonID)
	return args.Get(0).([]models.Owner), args.Error(1)
}

func (m *MockOwnerRepository) GetPokemonByOwner(ctx context.Context, ownerID int64) ([]models.Pokemon, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockOwnerRepository) Create(ctx context.Context, countryID int64, o *models.Owner) error {
	return m.Called(ctx, countryID, o).Error(0)
}

func (m *MockOwnerRepository) Update(ctx context.Context, o *models.Owner) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, o *models.Owner) error {
	return m.Called(ctx, o).Error(0)
}

type MockPokemonRepository struct {
	mock.Mock
}

func (m *MockPokemonRepository) List(ctx context.Context) ([]models.Pokemon, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) GetByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) GetByName(ctx context.Context, name string) (*models.Pokemon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPokemonRepository) GetRating(ctx context.Context, pokemonID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, pokemonID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPokemonRepository) Create(ctx context.Context, ownerID, categoryID int64, p *models.Pokemon) error {
	return m.Called(ctx, ownerID, categoryID, p).Error(0)
}

func (m *MockPokemonRepository) Update(ctx context.Context, p *models.Pokemon) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPokemonRepository) Delete(ctx context.Context, p *models.Pokemon) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPokemonRepository) DeleteWithReviews(ctx context.Context, p *models.Pokemon) error {
	return m.Called(ctx, p).Error(0)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) GetReviewsOfPokemon(ctx context.Context, pokemonID int64) ([]models.Review, error) {
	args := m.Called(ctx, pokemonID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, reviewerID, pokemonID int64, rv *models.Review) error {
	return m.Called(ctx, reviewerID, pokemonID, rv).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, rv *models.Review) error {
	return m.Called(ctx, rv).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, rv *models.Review) error {
	return m.Called(ctx, rv).Error(0)
}

func (m *MockReviewRepository) DeleteReviews(ctx context.Context, reviews []models.Review) error {
	return m.Called(ctx, reviews).Error(0)
}

type MockReviewerRepository struct {
	mock.Mock
}

func (m *MockReviewerRepository) List(ctx context.Context) ([]models.Reviewer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Reviewer), args.Error(1)
}

func (m *MockReviewerRepository) GetByID(ctx context.Context, id int64) (*models.Reviewer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reviewer), args.Error(1)
}

func (m *MockReviewerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewerRepository) GetReviewsByReviewer(ctx context.Context, reviewerID int64) ([]models.Review, error) {
	args := m.Called(ctx, reviewerID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewerRepository) Create(ctx context.Context, rv *models.Reviewer) error {
	return m.Called(ctx, rv).Error(0)
}

func (m *MockReviewerRepository) Update(ctx context.Context, rv *models.Reviewer) error {
	return m.Called(ctx, rv).Error(0)
}

func (m *MockReviewerRepository) Delete(ctx context.Context, rv *models.Reviewer) error {
	return m.Called(ctx, rv).Error(0)
}

func (m *MockReviewerRepository) DeleteWithReviews(ctx context.Context, rv *models.Reviewer) error {
	return m.Called(ctx, rv).Error(0)
}
