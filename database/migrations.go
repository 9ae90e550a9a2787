package database

// At most one row per normalized natural name. Expression indexes work the
// same on postgres and sqlite.
var migrations = []string{
	createCategoryNameIndex,
	createCountryNameIndex,
	createOwnerFirstNameIndex,
	createPokemonNameIndex,
	createReviewTitleIndex,
	createReviewerLastNameIndex,
}

const createCategoryNameIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_categories_name ON categories (LOWER(TRIM(name)));
`

const createCountryNameIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_countries_name ON countries (LOWER(TRIM(name)));
`

const createOwnerFirstNameIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_owners_first_name ON owners (LOWER(TRIM(first_name)));
`

const createPokemonNameIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_pokemon_name ON pokemon (LOWER(TRIM(name)));
`

const createReviewTitleIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_reviews_title ON reviews (LOWER(TRIM(title)));
`

const createReviewerLastNameIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_reviewers_last_name ON reviewers (LOWER(TRIM(last_name)));
`
