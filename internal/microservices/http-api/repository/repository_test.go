package repository_test

import (
	"context"
	"testing"
	"time"

	"pokereview/database"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RepositorySuite struct {
	suite.Suite
	ctx context.Context
	db  *gorm.DB

	categories repository.CategoryRepository
	countries  repository.CountryRepository
	owners     repository.OwnerRepository
	pokemon    repository.PokemonRepository
	reviews    repository.ReviewRepository
	reviewers  repository.ReviewerRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	db, err := database.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on")
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.use(db)
}

// use points every repository of the suite at db.
func (s *RepositorySuite) use(db *gorm.DB) {
	s.ctx = context.Background()
	s.db = db
	s.categories = repository.NewCategoryRepository(db)
	s.countries = repository.NewCountryRepository(db)
	s.owners = repository.NewOwnerRepository(db)
	s.pokemon = repository.NewPokemonRepository(db)
	s.reviews = repository.NewReviewRepository(db)
	s.reviewers = repository.NewReviewerRepository(db)
}

func (s *RepositorySuite) TearDownTest() {
	s.NoError(database.Close(s.db))
}

// --- fixtures ---

func (s *RepositorySuite) seedCountry(name string) *models.Country {
	c := &models.Country{Name: name}
	s.Require().NoError(s.countries.Create(s.ctx, c))
	return c
}

func (s *RepositorySuite) seedOwner(first string, countryID int64) *models.Owner {
	o := &models.Owner{FirstName: first, LastName: "Trainer", Gender: "f"}
	s.Require().NoError(s.owners.Create(s.ctx, countryID, o))
	return o
}

func (s *RepositorySuite) seedCategory(name string) *models.Category {
	c := &models.Category{Name: name}
	s.Require().NoError(s.categories.Create(s.ctx, c))
	return c
}

func (s *RepositorySuite) seedPokemon(name string, ownerID, categoryID int64) *models.Pokemon {
	p := &models.Pokemon{Name: name, BirthDate: time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)}
	s.Require().NoError(s.pokemon.Create(s.ctx, ownerID, categoryID, p))
	return p
}

func (s *RepositorySuite) seedReviewer(last string) *models.Reviewer {
	r := &models.Reviewer{FirstName: "Prof", LastName: last}
	s.Require().NoError(s.reviewers.Create(s.ctx, r))
	return r
}

func (s *RepositorySuite) seedReview(title string, rating int, reviewerID, pokemonID int64) *models.Review {
	r := &models.Review{Title: title, Text: "text of " + title, Rating: rating}
	s.Require().NoError(s.reviews.Create(s.ctx, reviewerID, pokemonID, r))
	return r
}

// graph seeds one country, owner and category and returns the ids a pokemon needs.
func (s *RepositorySuite) graph() (ownerID, categoryID int64) {
	country := s.seedCountry("Kanto")
	owner := s.seedOwner("Ash", country.ID)
	category := s.seedCategory("Electric")
	return owner.ID, category.ID
}

func (s *RepositorySuite) count(model interface{}, query string, args ...interface{}) int64 {
	var n int64
	q := s.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	s.Require().NoError(q.Count(&n).Error)
	return n
}

// --- category ---

func (s *RepositorySuite) TestCategory_Lifecycle() {
	c := s.seedCategory("Fire")

	got, err := s.categories.GetByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(*c, *got)

	ok, err := s.categories.Exists(s.ctx, c.ID)
	s.Require().NoError(err)
	s.True(ok)

	c.Name = "Flame"
	s.Require().NoError(s.categories.Update(s.ctx, c))
	got, err = s.categories.GetByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal("Flame", got.Name)

	s.Require().NoError(s.categories.Delete(s.ctx, c))
	ok, err = s.categories.Exists(s.ctx, c.ID)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RepositorySuite) TestCategory_GetMissing() {
	_, err := s.categories.GetByID(s.ctx, 404)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestCategory_UpdateAndDeleteMissing() {
	missing := &models.Category{ID: 404, Name: "Ghost"}
	s.ErrorIs(s.categories.Update(s.ctx, missing), repository.ErrNoRowsAffected)
	s.ErrorIs(s.categories.Delete(s.ctx, missing), repository.ErrNoRowsAffected)
}

func (s *RepositorySuite) TestCategory_NormalizedNameIsUnique() {
	s.seedCategory("Water")

	err := s.categories.Create(s.ctx, &models.Category{Name: "  wATer "})
	s.ErrorIs(err, repository.ErrDuplicateEntry)
	s.Equal(int64(1), s.count(&models.Category{}, ""))
}

func (s *RepositorySuite) TestCategory_List() {
	s.seedCategory("Grass")
	s.seedCategory("Rock")

	list, err := s.categories.List(s.ctx)
	s.Require().NoError(err)
	names := []string{list[0].Name, list[1].Name}
	s.ElementsMatch([]string{"Grass", "Rock"}, names)
}

func (s *RepositorySuite) TestCategory_GetPokemonByCategory() {
	ownerID, categoryID := s.graph()
	other := s.seedCategory("Psychic")
	pikachu := s.seedPokemon("Pikachu", ownerID, categoryID)
	s.seedPokemon("Mew", ownerID, other.ID)
	raichu := s.seedPokemon("Raichu", ownerID, categoryID)

	list, err := s.categories.GetPokemonByCategory(s.ctx, categoryID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(pikachu.ID, list[0].ID)
	s.Equal(raichu.ID, list[1].ID)
}

// --- country ---

func (s *RepositorySuite) TestCountry_Traversals() {
	kanto := s.seedCountry("Kanto")
	johto := s.seedCountry("Johto")
	ash := s.seedOwner("Ash", kanto.ID)
	s.seedOwner("Brock", kanto.ID)
	s.seedOwner("Gold", johto.ID)

	c, err := s.countries.GetCountryByOwner(s.ctx, ash.ID)
	s.Require().NoError(err)
	s.Equal(kanto.ID, c.ID)
	s.Equal("Kanto", c.Name)

	owners, err := s.countries.GetOwnersFromCountry(s.ctx, kanto.ID)
	s.Require().NoError(err)
	s.Len(owners, 2)

	_, err = s.countries.GetCountryByOwner(s.ctx, 404)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestCountry_DeleteWithOwnersIsRestricted() {
	kanto := s.seedCountry("Kanto")
	s.seedOwner("Ash", kanto.ID)

	err := s.countries.Delete(s.ctx, kanto)
	s.ErrorIs(err, repository.ErrReferentialViolation)

	ok, err := s.countries.Exists(s.ctx, kanto.ID)
	s.Require().NoError(err)
	s.True(ok)
}

// --- owner ---

func (s *RepositorySuite) TestOwner_CreateWithUnknownCountry() {
	err := s.owners.Create(s.ctx, 404, &models.Owner{FirstName: "Nobody"})
	s.ErrorIs(err, repository.ErrReferentialViolation)
	s.Zero(s.count(&models.Owner{}, ""))
}

func (s *RepositorySuite) TestOwner_GetAfterCreate() {
	kanto := s.seedCountry("Kanto")
	o := s.seedOwner("Misty", kanto.ID)

	got, err := s.owners.GetByID(s.ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(o.FirstName, got.FirstName)
	s.Equal(o.LastName, got.LastName)
	s.Equal(o.Gender, got.Gender)
	s.Equal(kanto.ID, got.CountryID)
}

func (s *RepositorySuite) TestOwner_UpdateKeepsCountryWhenUnset() {
	kanto := s.seedCountry("Kanto")
	o := s.seedOwner("Misty", kanto.ID)

	s.Require().NoError(s.owners.Update(s.ctx, &models.Owner{ID: o.ID, FirstName: "Misty", LastName: "Waterflower"}))

	got, err := s.owners.GetByID(s.ctx, o.ID)
	s.Require().NoError(err)
	s.Equal("Waterflower", got.LastName)
	s.Equal(kanto.ID, got.CountryID)
}

func (s *RepositorySuite) TestOwner_PokemonTraversals() {
	ownerID, categoryID := s.graph()
	kanto, err := s.countries.GetCountryByOwner(s.ctx, ownerID)
	s.Require().NoError(err)
	brock := s.seedOwner("Brock", kanto.ID)

	onix := s.seedPokemon("Onix", brock.ID, categoryID)
	pikachu := s.seedPokemon("Pikachu", ownerID, categoryID)

	owners, err := s.owners.GetOwnersOfPokemon(s.ctx, onix.ID)
	s.Require().NoError(err)
	s.Require().Len(owners, 1)
	s.Equal(brock.ID, owners[0].ID)

	list, err := s.owners.GetPokemonByOwner(s.ctx, ownerID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(pikachu.ID, list[0].ID)
}

func (s *RepositorySuite) TestOwner_DeleteDropsPokemonLinks() {
	ownerID, categoryID := s.graph()
	p := s.seedPokemon("Pikachu", ownerID, categoryID)

	s.Require().NoError(s.owners.Delete(s.ctx, &models.Owner{ID: ownerID}))

	s.Zero(s.count(&models.PokemonOwner{}, "pokemon_id = ?", p.ID))
	ok, err := s.pokemon.Exists(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(ok)
}

// --- pokemon ---

func (s *RepositorySuite) TestPokemon_CreateLinksOwnerAndCategory() {
	ownerID, categoryID := s.graph()
	p := s.seedPokemon("Pikachu", ownerID, categoryID)

	s.Equal(int64(1), s.count(&models.PokemonOwner{}, "pokemon_id = ? AND owner_id = ?", p.ID, ownerID))
	s.Equal(int64(1), s.count(&models.PokemonCategory{}, "pokemon_id = ? AND category_id = ?", p.ID, categoryID))
	s.Equal(int64(1), s.count(&models.PokemonOwner{}, ""))
	s.Equal(int64(1), s.count(&models.PokemonCategory{}, ""))
}

func (s *RepositorySuite) TestPokemon_GetAfterCreate() {
	ownerID, categoryID := s.graph()
	p := s.seedPokemon("Pikachu", ownerID, categoryID)

	got, err := s.pokemon.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.Name, got.Name)
	s.True(p.BirthDate.Equal(got.BirthDate), "birth date %v != %v", p.BirthDate, got.BirthDate)

	byName, err := s.pokemon.GetByName(s.ctx, "Pikachu")
	s.Require().NoError(err)
	s.Equal(p.ID, byName.ID)

	_, err = s.pokemon.GetByName(s.ctx, "Missingno")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestPokemon_CreateWithUnknownRelations() {
	ownerID, categoryID := s.graph()

	err := s.pokemon.Create(s.ctx, 404, categoryID, &models.Pokemon{Name: "Ghost"})
	s.ErrorIs(err, repository.ErrReferentialViolation)

	err = s.pokemon.Create(s.ctx, ownerID, 404, &models.Pokemon{Name: "Ghost"})
	s.ErrorIs(err, repository.ErrReferentialViolation)

	s.Zero(s.count(&models.Pokemon{}, ""))
	s.Zero(s.count(&models.PokemonOwner{}, ""))
	s.Zero(s.count(&models.PokemonCategory{}, ""))
}

func (s *RepositorySuite) TestPokemon_DuplicateRollsBackLinks() {
	ownerID, categoryID := s.graph()
	s.seedPokemon("Pikachu", ownerID, categoryID)

	err := s.pokemon.Create(s.ctx, ownerID, categoryID, &models.Pokemon{Name: " PIKACHU"})
	s.ErrorIs(err, repository.ErrDuplicateEntry)
	s.Equal(int64(1), s.count(&models.Pokemon{}, ""))
	s.Equal(int64(1), s.count(&models.PokemonOwner{}, ""))
}

func (s *RepositorySuite) TestPokemon_ListOrderedByID() {
	ownerID, categoryID := s.graph()
	a := s.seedPokemon("Bulbasaur", ownerID, categoryID)
	b := s.seedPokemon("Ivysaur", ownerID, categoryID)
	c := s.seedPokemon("Venusaur", ownerID, categoryID)

	list, err := s.pokemon.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal([]int64{a.ID, b.ID, c.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})
	s.Less(list[0].ID, list[1].ID)
	s.Less(list[1].ID, list[2].ID)
}

func (s *RepositorySuite) TestPokemon_Rating() {
	ownerID, categoryID := s.graph()
	reviewer := s.seedReviewer("Oak")
	p := s.seedPokemon("Pikachu", ownerID, categoryID)
	q := s.seedPokemon("Raichu", ownerID, categoryID)

	rating, err := s.pokemon.GetRating(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(rating.Equal(decimal.Zero), "got %s", rating)

	s.seedReview("ok", 3, reviewer.ID, p.ID)
	s.seedReview("good", 4, reviewer.ID, p.ID)
	s.seedReview("great", 5, reviewer.ID, p.ID)
	s.seedReview("fine", 3, reviewer.ID, q.ID)
	s.seedReview("nice", 4, reviewer.ID, q.ID)

	rating, err = s.pokemon.GetRating(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(rating.Equal(decimal.NewFromInt(4)), "got %s", rating)

	rating, err = s.pokemon.GetRating(s.ctx, q.ID)
	s.Require().NoError(err)
	s.True(rating.Equal(decimal.RequireFromString("3.5")), "got %s", rating)
}

func (s *RepositorySuite) TestPokemon_DeleteWithReviewsIsRestricted() {
	ownerID, categoryID := s.graph()
	reviewer := s.seedReviewer("Oak")
	p := s.seedPokemon("Pikachu", ownerID, categoryID)
	s.seedReview("great", 5, reviewer.ID, p.ID)

	err := s.pokemon.Delete(s.ctx, p)
	s.ErrorIs(err, repository.ErrReferentialViolation)

	ok, err := s.pokemon.Exists(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RepositorySuite) TestPokemon_DeleteWithReviews() {
	ownerID, categoryID := s.graph()
	reviewer := s.seedReviewer("Oak")
	p := s.seedPokemon("Pikachu", ownerID, categoryID)
	other := s.seedPokemon("Raichu", ownerID, categoryID)
	s.seedReview("great", 5, reviewer.ID, p.ID)
	s.seedReview("meh", 2, reviewer.ID, p.ID)
	kept := s.seedReview("fine", 3, reviewer.ID, other.ID)

	s.Require().NoError(s.pokemon.DeleteWithReviews(s.ctx, p))

	ok, err := s.pokemon.Exists(s.ctx, p.ID)
	s.Require().NoError(err)
	s.False(ok)
	s.Zero(s.count(&models.Review{}, "pokemon_id = ?", p.ID))
	s.Zero(s.count(&models.PokemonOwner{}, "pokemon_id = ?", p.ID))
	s.Zero(s.count(&models.PokemonCategory{}, "pokemon_id = ?", p.ID))

	ok, err = s.reviews.Exists(s.ctx, kept.ID)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RepositorySuite) TestPokemon_DeleteWithReviewsMissing() {
	err := s.pokemon.DeleteWithReviews(s.ctx, &models.Pokemon{ID: 404})
	s.ErrorIs(err, repository.ErrNoRowsAffected)
}

func (s *RepositorySuite) TestPokemon_Update() {
	ownerID, categoryID := s.graph()
	p := s.seedPokemon("Pikachu", ownerID, categoryID)

	born := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.pokemon.Update(s.ctx, &models.Pokemon{ID: p.ID, Name: "Pichu", BirthDate: born}))

	got, err := s.pokemon.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Pichu", got.Name)
	s.True(born.Equal(got.BirthDate))
}

// --- review ---

func (s *RepositorySuite) TestReview_CreateWithUnknownRelations() {
	ownerID, categoryID := s.graph()
	reviewer := s.seedReviewer("Oak")
	p := s.seedPokemon("Pikachu", ownerID, categoryID)

	err := s.reviews.Create(s.ctx, 404, p.ID, &models.Review{Title: "x", Rating: 3})
	s.ErrorIs(err, repository.ErrReferentialViolation)

	err = s.reviews.Create(s.ctx, reviewer.ID, 404, &models.Review{Title: "x", Rating: 3})
	s.ErrorIs(err, repository.ErrReferentialViolation)

	s.Zero(s.count(&models.Review{}, ""))
}

func (s *RepositorySuite) TestReview_LifecycleAndTraversal() {
	ownerID, categoryID := s.graph()
	reviewer := s.seedReviewer("Oak")
	p := s.seedPokemon("Pikachu", ownerID, categoryID)
	r := s.seedReview("great", 5, reviewer.ID, p.ID)

	got, err := s.reviews.GetByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(r.Title, got.Title)
	s.Equal(r.Text, got.Text)
	s.Equal(5, got.Rating)
	s.Equal(p.ID, got.PokemonID)
	s.Equal(reviewer.ID, got.ReviewerID)

	list, err := s.reviews.GetReviewsOfPokemon(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Len(list, 1)

	r.Rating = 2
	r.Title = "changed my mind"
	s.Require().NoError(s.reviews.Update(s.ctx, r))
	got, err = s.reviews.GetByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(2, got.Rating)
	s.Equal("changed my mind", got.Title)

	s.Require().NoError(s.reviews.Delete(s.ctx, r))
	ok, err := s.reviews.Exists(s.ctx, r.ID)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RepositorySuite) TestReview_DeleteReviews() {
	ownerID, categoryID := s.graph()
	reviewer := s.seedReviewer("Oak")
	p := s.seedPokemon("Pikachu", ownerID, categoryID)
	s.seedReview("a", 1, reviewer.ID, p.ID)
	s.seedReview("b", 2, reviewer.ID, p.ID)

	s.NoError(s.reviews.DeleteReviews(s.ctx, nil))

	list, err := s.reviews.GetReviewsOfPokemon(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.reviews.DeleteReviews(s.ctx, list))
	s.Zero(s.count(&models.Review{}, ""))

	// with the reviews gone the plain delete goes through
	s.Require().NoError(s.pokemon.Delete(s.ctx, p))
}

// --- reviewer ---

func (s *RepositorySuite) TestReviewer_ReviewsAndDelete() {
	ownerID, categoryID := s.graph()
	oak := s.seedReviewer("Oak")
	elm := s.seedReviewer("Elm")
	p := s.seedPokemon("Pikachu", ownerID, categoryID)
	s.seedReview("a", 4, oak.ID, p.ID)
	s.seedReview("b", 5, oak.ID, p.ID)
	s.seedReview("c", 1, elm.ID, p.ID)

	list, err := s.reviewers.GetReviewsByReviewer(s.ctx, oak.ID)
	s.Require().NoError(err)
	s.Len(list, 2)

	s.ErrorIs(s.reviewers.Delete(s.ctx, oak), repository.ErrReferentialViolation)

	s.Require().NoError(s.reviewers.DeleteWithReviews(s.ctx, oak))
	ok, err := s.reviewers.Exists(s.ctx, oak.ID)
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(int64(1), s.count(&models.Review{}, ""))
}

func (s *RepositorySuite) TestReviewer_Update() {
	r := s.seedReviewer("Oak")

	s.Require().NoError(s.reviewers.Update(s.ctx, &models.Reviewer{ID: r.ID, FirstName: "Samuel", LastName: "Oak"}))
	got, err := s.reviewers.GetByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal("Samuel", got.FirstName)
}
