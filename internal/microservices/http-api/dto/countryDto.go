package dto

import "pokereview/internal/microservices/http-api/models"

// CountryDTO is the request and response body for /api/countries
type CountryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d CountryDTO) ToModel() models.Country {
	return models.Country{ID: d.ID, Name: d.Name}
}

func FromCountryModel(m models.Country) CountryDTO {
	return CountryDTO{ID: m.ID, Name: m.Name}
}

func FromCountryModels(list []models.Country) []CountryDTO {
	return mapAll(list, FromCountryModel)
}
