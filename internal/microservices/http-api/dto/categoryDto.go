package dto

import "pokereview/internal/microservices/http-api/models"

// CategoryDTO is the request and response body for /api/categories
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d CategoryDTO) ToModel() models.Category {
	return models.Category{ID: d.ID, Name: d.Name}
}

func FromCategoryModel(m models.Category) CategoryDTO {
	return CategoryDTO{ID: m.ID, Name: m.Name}
}

func FromCategoryModels(list []models.Category) []CategoryDTO {
	return mapAll(list, FromCategoryModel)
}
