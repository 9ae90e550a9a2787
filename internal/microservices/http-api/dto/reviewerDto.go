package dto

import "pokereview/internal/microservices/http-api/models"

type ReviewerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (d ReviewerDTO) ToModel() models.Reviewer {
	return models.Reviewer{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
}

func FromReviewerModel(m models.Reviewer) ReviewerDTO {
	return ReviewerDTO{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName}
}

func FromReviewerModels(list []models.Reviewer) []ReviewerDTO {
	return mapAll(list, FromReviewerModel)
}
