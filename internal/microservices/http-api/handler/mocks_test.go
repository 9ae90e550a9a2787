package handler_test

import (
	"context"

	"pokereview/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICES ---

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) GetPokemon(ctx context.Context, categoryID int64) ([]models.Pokemon, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryService) Update(ctx context.Context, id int64, c *models.Category) error {
	return m.Called(ctx, id, c).Error(0)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCountryService struct {
	mock.Mock
}

func (m *MockCountryService) List(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockCountryService) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryService) GetByOwner(ctx context.Context, ownerID int64) (*models.Country, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryService) GetOwners(ctx context.Context, countryID int64) ([]models.Owner, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).([]models.Owner), args.Error(1)
}

func (m *MockCountryService) Create(ctx context.Context, c *models.Country) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCountryService) Update(ctx context.Context, id int64, c *models.Country) error {
	return m.Called(ctx, id, c).Error(0)
}

func (m *MockCountryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) List(ctx context.Context) ([]models.Owner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Owner), args.Error(1)
}

func (m *MockOwnerService) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Owner), args.Error(1)
}

func (m *MockOwnerService) GetPokemon(ctx context.Context, ownerID int64) ([]models.Pokemon, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockOwnerService) GetOwnersOfPokemon(ctx context.Context, pokemonID int64) ([]models.Owner, error) {
	args := m.Called(ctx, pokemonID)
	return args.Get(0).([]models.Owner), args.Error(1)
}

func (m *MockOwnerService) Create(ctx context.Context, countryID int64, o *models.Owner) error {
	return m.Called(ctx, countryID, o).Error(0)
}

func (m *MockOwnerService) Update(ctx context.Context, id int64, o *models.Owner) error {
	return m.Called(ctx, id, o).Error(0)
}

func (m *MockOwnerService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPokemonService struct {
	mock.Mock
}

func (m *MockPokemonService) List(ctx context.Context) ([]models.Pokemon, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockPokemonService) GetByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pokemon), args.Error(1)
}

func (m *MockPokemonService) GetByName(ctx context.Context, name string) (*models.Pokemon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pokemon), args.Error(1)
}

func (m *MockPokemonService) GetRating(ctx context.Context, id int64) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPokemonService) Create(ctx context.Context, ownerID, categoryID int64, p *models.Pokemon) error {
	return m.Called(ctx, ownerID, categoryID, p).Error(0)
}

func (m *MockPokemonService) Update(ctx context.Context, id int64, p *models.Pokemon) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *MockPokemonService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewService) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) GetReviewsOfPokemon(ctx context.Context, pokemonID int64) ([]models.Review, error) {
	args := m.Called(ctx, pokemonID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, reviewerID, pokemonID int64, rv *models.Review) error {
	return m.Called(ctx, reviewerID, pokemonID, rv).Error(0)
}

func (m *MockReviewService) Update(ctx context.Context, id int64, rv *models.Review) error {
	return m.Called(ctx, id, rv).Error(0)
}

func (m *MockReviewService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockReviewerService struct {
	mock.Mock
}

func (m *MockReviewerService) List(ctx context.Context) ([]models.Reviewer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Reviewer), args.Error(1)
}

func (m *MockReviewerService) GetByID(ctx context.Context, id int64) (*models.Reviewer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reviewer), args.Error(1)
}

func (m *MockReviewerService) GetReviews(ctx context.Context, reviewerID int64) ([]models.Review, error) {
	args := m.Called(ctx, reviewerID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewerService) Create(ctx context.Context, rv *models.Reviewer) error {
	return m.Called(ctx, rv).Error(0)
}

func (m *MockReviewerService) Update(ctx context.Context, id int64, rv *models.Reviewer) error {
	return m.Called(ctx, id, rv).Error(0)
}

func (m *MockReviewerService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
