package models

// PokemonOwner links a pokemon to one of its owners. The pair is the key.
type PokemonOwner struct {
	PokemonID int64 `json:"pokemon_id" gorm:"primaryKey;autoIncrement:false"`
	OwnerID   int64 `json:"owner_id" gorm:"primaryKey;autoIncrement:false;index"`

	// Associations
	Pokemon *Pokemon `json:"-" gorm:"foreignKey:PokemonID;constraint:OnDelete:CASCADE;"`
	Owner   *Owner   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}

func (PokemonOwner) TableName() string {
	return "pokemon_owners"
}
