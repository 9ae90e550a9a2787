package handler

import (
	"net/http"

	"pokereview/internal/microservices/http-api/dto"
	"pokereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(api *gin.RouterGroup) {
	rg := api.Group("/reviews")
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/pokemon/:id", h.GetReviewsOfPokemon)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ReviewHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviewModels(list))
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviewModel(*m))
}

func (h *ReviewHandler) GetReviewsOfPokemon(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.svc.GetReviewsOfPokemon(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviewModels(list))
}

// Create expects ?reviewerId=&pokemonId=.
func (h *ReviewHandler) Create(c *gin.Context) {
	reviewerID, ok := queryID(c, "reviewerId")
	if !ok {
		return
	}
	pokemonID, ok := queryID(c, "pokemonId")
	if !ok {
		return
	}
	var in dto.ReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	model.ID = 0
	if err := h.svc.Create(c.Request.Context(), reviewerID, pokemonID, &model); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromReviewModel(model))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var in dto.ReviewDTO
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

func (h *ReviewHandler) Delete(c *gin.Context) {
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
