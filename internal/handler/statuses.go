package handler

import (
	"net/http"

	"deptdash/internal/dto"
	"deptdash/internal/model"
	"deptdash/internal/repository"

	"github.com/gin-gonic/gin"
)

type StatusesHandler struct{ repo repository.StatusRepository }

func NewStatusesHandler(repo repository.StatusRepository) *StatusesHandler {
	return &StatusesHandler{repo: repo}
}

func (h *StatusesHandler) Create(c *gin.Context) {
	var req dto.DescriptionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s := &model.Status{Description: req.Description}
	if err := h.repo.Create(c.Request.Context(), s); err != nil {
		respondError(c, err, "Status", "Failed to create status")
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *StatusesHandler) List(c *gin.Context) {
	statuses, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Status", "Failed to fetch statuses")
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (h *StatusesHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DescriptionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s := &model.Status{ID: id, Description: req.Description}
	if err := h.repo.Update(c.Request.Context(), s); err != nil {
		respondError(c, err, "Status", "Failed to update status.")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *StatusesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Status", "Failed to delete status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status deleted successfully", "deletedStatus": s})
}
