package handler

import (
	"net/http"

	"deptdash/internal/dto"
	"deptdash/internal/model"
	"deptdash/internal/repository"

	"github.com/gin-gonic/gin"
)

type DatesHandler struct{ repo repository.DateRepository }

func NewDatesHandler(repo repository.DateRepository) *DatesHandler {
	return &DatesHandler{repo: repo}
}

func (h *DatesHandler) Create(c *gin.Context) {
	var req dto.ImportantDateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d := &model.ImportantDate{
		Description:   req.Description,
		AssignedDate:  req.AssignedDate,
		CurrentOption: *req.CurrentOption,
	}
	if err := h.repo.Create(c.Request.Context(), d); err != nil {
		respondError(c, err, "Date", "Failed to create date")
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DatesHandler) List(c *gin.Context) {
	dates, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Date", "Failed to fetch dates")
		return
	}
	c.JSON(http.StatusOK, dates)
}

func (h *DatesHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ImportantDateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d := &model.ImportantDate{
		ID:            id,
		Description:   req.Description,
		AssignedDate:  req.AssignedDate,
		CurrentOption: *req.CurrentOption,
	}
	if err := h.repo.Update(c.Request.Context(), d); err != nil {
		respondError(c, err, "Date", "Failed to update date.")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DatesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Date", "Failed to delete date")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Date deleted successfully", "deletedDate": d})
}
