package dto

import (
	"time"

	"pokereview/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
)

// PokemonDTO is the request and response body for /api/pokemon
type PokemonDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

func (d PokemonDTO) ToModel() models.Pokemon {
	return models.Pokemon{ID: d.ID, Name: d.Name, BirthDate: d.BirthDate}
}

func FromPokemonModel(m models.Pokemon) PokemonDTO {
	return PokemonDTO{ID: m.ID, Name: m.Name, BirthDate: m.BirthDate}
}

func FromPokemonModels(list []models.Pokemon) []PokemonDTO {
	return mapAll(list, FromPokemonModel)
}

// PokemonRatingResponse for GET /api/pokemon/:id/rating. decimal marshals
// the rating as a quoted string so no digits are lost.
type PokemonRatingResponse struct {
	PokemonID int64           `json:"pokemon_id"`
	Rating    decimal.Decimal `json:"rating"`
}

func NewPokemonRatingResponse(pokemonID int64, rating decimal.Decimal) PokemonRatingResponse {
	return PokemonRatingResponse{PokemonID: pokemonID, Rating: rating}
}
