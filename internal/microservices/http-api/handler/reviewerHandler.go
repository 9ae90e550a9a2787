package handler

import (
	"net/http"

	"pokereview/internal/microservices/http-api/dto"
	"pokereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewerHandler struct {
	svc service.ReviewerService
}

func NewReviewerHandler(svc service.ReviewerService) *ReviewerHandler {
	return &ReviewerHandler{svc: svc}
}

func (h *ReviewerHandler) RegisterRoutes(api *gin.RouterGroup) {
	rg := api.Group("/reviewers")
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/reviews", h.GetReviews)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ReviewerHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviewerModels(list))
}

func (h *ReviewerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviewerModel(*m))
}

func (h *ReviewerHandler) GetReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.svc.GetReviews(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviewModels(list))
}

func (h *ReviewerHandler) Create(c *gin.Context) {
	var in dto.ReviewerDTO
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
	c.JSON(http.StatusCreated, dto.FromReviewerModel(model))
}

func (h *ReviewerHandler) Update(c *gin.Context) {
	var in dto.ReviewerDTO
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

// Delete removes the reviewer along with the reviews they wrote.
func (h *ReviewerHandler) Delete(c *gin.Context) {
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
