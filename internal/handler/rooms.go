package handler

import (
	"net/http"

	"deptdash/internal/dto"
	"deptdash/internal/model"
	"deptdash/internal/repository"

	"github.com/gin-gonic/gin"
)

type RoomsHandler struct{ repo repository.RoomRepository }

func NewRoomsHandler(repo repository.RoomRepository) *RoomsHandler {
	return &RoomsHandler{repo: repo}
}

func (h *RoomsHandler) Create(c *gin.Context) {
	var req dto.RoomRequest
	if !bindAndValidate(c, &req) {
		return
	}
	room := &model.Room{Name: req.Name}
	if err := h.repo.Create(c.Request.Context(), room); err != nil {
		respondError(c, err, "Room", "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *RoomsHandler) List(c *gin.Context) {
	rooms, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Room", "Failed to fetch rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RoomRequest
	if !bindAndValidate(c, &req) {
		return
	}
	room := &model.Room{ID: id, Name: req.Name}
	if err := h.repo.Update(c.Request.Context(), room); err != nil {
		respondError(c, err, "Room", "Failed to update room.")
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	room, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Room", "Failed to delete room")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully", "deletedRoom": room})
}
