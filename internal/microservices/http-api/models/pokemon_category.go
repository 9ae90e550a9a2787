package models

// PokemonCategory links a pokemon to a category. The pair is the key.
type PokemonCategory struct {
	PokemonID  int64 `json:"pokemon_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID int64 `json:"category_id" gorm:"primaryKey;autoIncrement:false;index"`

	// Associations
	Pokemon  *Pokemon  `json:"-" gorm:"foreignKey:PokemonID;constraint:OnDelete:CASCADE;"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

func (PokemonCategory) TableName() string {
	return "pokemon_categories"
}
