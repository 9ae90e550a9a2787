package models

// Ratings are whole numbers between MinRating and MaxRating inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string `json:"title" gorm:"not null"`
	Text       string `json:"text" gorm:"type:text"`
	Rating     int    `json:"rating" gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	PokemonID  int64  `json:"pokemon_id" gorm:"not null;index"`
	ReviewerID int64  `json:"reviewer_id" gorm:"not null;index"`

	// Associations. RESTRICT keeps a pokemon or reviewer from being removed
	// while reviews still point at it.
	Pokemon  *Pokemon  `json:"pokemon,omitempty" gorm:"foreignKey:PokemonID;constraint:OnDelete:RESTRICT;"`
	Reviewer *Reviewer `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID;constraint:OnDelete:RESTRICT;"`
}

func (Review) TableName() string {
	return "reviews"
}
