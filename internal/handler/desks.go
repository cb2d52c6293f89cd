package handler

import (
	"net/http"

	"deptdash/internal/dto"
	"deptdash/internal/service"

	"github.com/gin-gonic/gin"
)

type DesksHandler struct{ svc service.DeskService }

func NewDesksHandler(svc service.DeskService) *DesksHandler {
	return &DesksHandler{svc: svc}
}

func (h *DesksHandler) Create(c *gin.Context) {
	var req dto.CreateDeskRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Desk", "Failed to create desk")
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DesksHandler) List(c *gin.Context) {
	desks, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Desk", "Failed to fetch desks")
		return
	}
	c.JSON(http.StatusOK, desks)
}

func (h *DesksHandler) Update(c *gin.Context) {
	number, ok := pathID(c, "number")
	if !ok {
		return
	}
	var req dto.UpdateDeskRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.Update(c.Request.Context(), number, req)
	if err != nil {
		respondError(c, err, "Desk", "Failed to update desk.")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DesksHandler) Delete(c *gin.Context) {
	number, ok := pathID(c, "number")
	if !ok {
		return
	}
	d, err := h.svc.Delete(c.Request.Context(), number)
	if err != nil {
		respondError(c, err, "Desk", "Failed to delete desk")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Desk deleted successfully", "deletedDesk": d})
}
