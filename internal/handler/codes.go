package handler

import (
	"net/http"

	"deptdash/internal/dto"
	"deptdash/internal/model"
	"deptdash/internal/repository"

	"github.com/gin-gonic/gin"
)

type CodesHandler struct{ repo repository.CodeRepository }

func NewCodesHandler(repo repository.CodeRepository) *CodesHandler {
	return &CodesHandler{repo: repo}
}

func (h *CodesHandler) Create(c *gin.Context) {
	var req dto.CodeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	code := &model.Code{Value: req.Value, IsGlobal: *req.IsGlobal}
	if err := h.repo.Create(c.Request.Context(), code); err != nil {
		respondError(c, err, "Code", "Failed to create code")
		return
	}
	c.JSON(http.StatusCreated, code)
}

func (h *CodesHandler) List(c *gin.Context) {
	codes, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Code", "Failed to fetch codes")
		return
	}
	c.JSON(http.StatusOK, codes)
}

func (h *CodesHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CodeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	code := &model.Code{ID: id, Value: req.Value, IsGlobal: *req.IsGlobal}
	if err := h.repo.Update(c.Request.Context(), code); err != nil {
		respondError(c, err, "Code", "Failed to update code.")
		return
	}
	c.JSON(http.StatusOK, code)
}

func (h *CodesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	code, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Code", "Failed to delete code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Code deleted successfully", "deletedCode": code})
}
