package dto

import "pokereview/internal/microservices/http-api/models"

// ReviewDTO carries the review without its pokemon and reviewer. The ids are
// filled in on responses and ignored on create.
type ReviewDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	PokemonID  int64  `json:"pokemon_id,omitempty"`
	ReviewerID int64  `json:"reviewer_id,omitempty"`
}

func (d ReviewDTO) ToModel() models.Review {
	return models.Review{
		ID:     d.ID,
		Title:  d.Title,
		Text:   d.Text,
		Rating: d.Rating,
	}
}

func FromReviewModel(m models.Review) ReviewDTO {
	return ReviewDTO{
		ID:         m.ID,
		Title:      m.Title,
		Text:       m.Text,
		Rating:     m.Rating,
		PokemonID:  m.PokemonID,
		ReviewerID: m.ReviewerID,
	}
}

func FromReviewModels(list []models.Review) []ReviewDTO {
	return mapAll(list, FromReviewModel)
}
