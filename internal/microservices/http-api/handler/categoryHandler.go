package handler

import (
	"net/http"

	"pokereview/internal/microservices/http-api/dto"
	"pokereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) RegisterRoutes(api *gin.RouterGroup) {
	rg := api.Group("/categories")
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/pokemon", h.GetPokemon)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCategoryModels(list))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCategoryModel(*m))
}

func (h *CategoryHandler) GetPokemon(c *gin.Context) {
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

func (h *CategoryHandler) Create(c *gin.Context) {
	var in dto.CategoryDTO
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
	c.JSON(http.StatusCreated, dto.FromCategoryModel(model))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var in dto.CategoryDTO
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

func (h *CategoryHandler) Delete(c *gin.Context) {
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
