package handler

import (
	"net/http"

	"deptdash/internal/dto"
	"deptdash/internal/model"
	"deptdash/internal/repository"

	"github.com/gin-gonic/gin"
)

// PositionsHandler binds the repository directly; positions have no
// business rules beyond required-field validation.
type PositionsHandler struct{ repo repository.PositionRepository }

func NewPositionsHandler(repo repository.PositionRepository) *PositionsHandler {
	return &PositionsHandler{repo: repo}
}

func (h *PositionsHandler) Create(c *gin.Context) {
	var req dto.DescriptionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p := &model.Position{Description: req.Description}
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		respondError(c, err, "Position", "Failed to create position")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PositionsHandler) List(c *gin.Context) {
	positions, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Position", "Failed to fetch positions")
		return
	}
	c.JSON(http.StatusOK, positions)
}

func (h *PositionsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DescriptionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p := &model.Position{ID: id, Description: req.Description}
	if err := h.repo.Update(c.Request.Context(), p); err != nil {
		respondError(c, err, "Position", "Failed to update position.")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PositionsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Position", "Failed to delete position")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Position deleted successfully", "deletedPosition": p})
}
