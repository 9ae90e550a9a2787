package handler

import (
	"net/http"
	"strings"

	"pokereview/internal/microservices/http-api/dto"
	"pokereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type PokemonHandler struct {
	svc service.PokemonService
}

func NewPokemonHandler(svc service.PokemonService) *PokemonHandler {
	return &PokemonHandler{svc: svc}
}

func (h *PokemonHandler) RegisterRoutes(api *gin.RouterGroup) {
	rg := api.Group("/pokemon")
	rg.GET("", h.List)
	rg.GET("/search", h.GetByName)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/rating", h.GetRating)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *PokemonHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPokemonModels(list))
}

func (h *PokemonHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPokemonModel(*m))
}

// GetByName serves GET /pokemon/search?name=.
func (h *PokemonHandler) GetByName(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	m, err := h.svc.GetByName(c.Request.Context(), name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPokemonModel(*m))
}

func (h *PokemonHandler) GetRating(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rating, err := h.svc.GetRating(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPokemonRatingResponse(id, rating))
}

// Create expects ?ownerId=&categoryId=.
func (h *PokemonHandler) Create(c *gin.Context) {
	ownerID, ok := queryID(c, "ownerId")
	if !ok {
		return
	}
	categoryID, ok := queryID(c, "categoryId")
	if !ok {
		return
	}
	var in dto.PokemonDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	model.ID = 0
	if err := h.svc.Create(c.Request.Context(), ownerID, categoryID, &model); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromPokemonModel(model))
}

func (h *PokemonHandler) Update(c *gin.Context) {
	var in dto.PokemonDTO
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

// Delete removes the pokemon along with its reviews.
func (h *PokemonHandler) Delete(c *gin.Context) {
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
