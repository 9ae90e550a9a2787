package models

// All lists every persisted model in dependency order, for migrations.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Country{},
		&Reviewer{},
		&Owner{},
		&Pokemon{},
		&Review{},
		&PokemonOwner{},
		&PokemonCategory{},
	}
}
