package handler

import (
	"net/http"

	"pokereview/internal/microservices/http-api/dto"
	"pokereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CountryHandler struct {
	svc service.CountryService
}

func NewCountryHandler(svc service.CountryService) *CountryHandler {
	return &CountryHandler{svc: svc}
}

func (h *CountryHandler) RegisterRoutes(api *gin.RouterGroup) {
	rg := api.Group("/countries")
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/owners", h.GetOwners)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)

	api.GET("/owners/:id/country", h.GetByOwner)
}

func (h *CountryHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCountryModels(list))
}

func (h *CountryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCountryModel(*m))
}

func (h *CountryHandler) GetOwners(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.svc.GetOwners(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOwnerModels(list))
}

// GetByOwner serves GET /owners/:id/country.
func (h *CountryHandler) GetByOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetByOwner(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCountryModel(*m))
}

func (h *CountryHandler) Create(c *gin.Context) {
	var in dto.CountryDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	model.ID = 0
	if err := h.svc.Create(c.Request.Context(), &model); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromCountryModel(model))
}

func (h *CountryHandler) Update(c *gin.Context) {
	var in dto.CountryDTO
	id, ok := bindUpdate(c, &in, func() int64 { return in.ID })
	if !ok {
		return
	}
	model := in.ToModel()
	if err := h.svc.Update(c.Request.Context(), id, &model); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CountryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
