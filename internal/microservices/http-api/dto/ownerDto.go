package dto

import "pokereview/internal/microservices/http-api/models"

// OwnerDTO leaves out the country association. CountryID is read-only on
// create, where the country comes from the countryId query parameter.
type OwnerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	CountryID int64  `json:"country_id,omitempty"`
}

func (d OwnerDTO) ToModel() models.Owner {
	return models.Owner{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Gender:    d.Gender,
		CountryID: d.CountryID,
	}
}

func FromOwnerModel(m models.Owner) OwnerDTO {
	return OwnerDTO{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Gender:    m.Gender,
		CountryID: m.CountryID,
	}
}

func FromOwnerModels(list []models.Owner) []OwnerDTO {
	return mapAll(list, FromOwnerModel)
}
