package handler

import (
	"net/http"

	"pokereview/internal/microservices/http-api/dto"
	"pokereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	svc service.OwnerService
}

func NewOwnerHandler(svc service.OwnerService) *OwnerHandler {
	return &OwnerHandler{svc: svc}
}

func (h *OwnerHandler) RegisterRoutes(api *gin.RouterGroup) {
	rg := api.Group("/owners")
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/pokemon", h.GetPokemon)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)

	api.GET("/pokemon/:id/owners", h.GetOwnersOfPokemon)
}

func (h *OwnerHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOwnerModels(list))
}

func (h *OwnerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOwnerModel(*m))
}

func (h *OwnerHandler) GetPokemon(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.svc.GetPokemon(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPokemonModels(list))
}

// GetOwnersOfPokemon serves GET /pokemon/:id/owners.
func (h *OwnerHandler) GetOwnersOfPokemon(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.svc.GetOwnersOfPokemon(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOwnerModels(list))
}

// Create expects ?countryId=.
func (h *OwnerHandler) Create(c *gin.Context) {
	countryID, ok := queryID(c, "countryId")
	if !ok {
		return
	}
	var in dto.OwnerDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	model.ID = 0
	if err := h.svc.Create(c.Request.Context(), countryID, &model); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromOwnerModel(model))
}

func (h *OwnerHandler) Update(c *gin.Context) {
	var in dto.OwnerDTO
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

func (h *OwnerHandler) Delete(c *gin.Context) {
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
