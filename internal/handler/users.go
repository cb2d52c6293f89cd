package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"deptdash/internal/apierror"
	"deptdash/internal/dto"
	"deptdash/internal/repository"
	"deptdash/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "User", "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, u)
}

// List returns all users ordered by (lastName, firstName), optionally
// narrowed by a free-text q and/or a positionId.
func (h *UsersHandler) List(c *gin.Context) {
	filter := repository.UserFilter{Query: c.Query("q")}
	if raw := c.Query("positionId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid positionId."))
			return
		}
		filter.PositionID = &id
	}

	users, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "User", "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UsersHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	var positionID *int64
	if raw := c.Query("positionId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid positionId."))
			return
		}
		positionID = &id
	}

	resp, err := h.svc.Search(c.Request.Context(), c.Query("q"), limit, positionID)
	if err != nil {
		respondError(c, err, "User", "Failed to search users")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "User", "Failed to update user.")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "User", "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteUserResponse{
		Message:     "User deleted successfully",
		DeletedUser: u,
	})
}

// BulkDelete accepts {ids:[...]} and deletes every existing user in the list.
// Entries that are not whole JSON numbers are silently dropped rather than
// failing the whole request.
func (h *UsersHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return
	}

	ids := make([]int64, 0, len(req.IDs))
	for _, raw := range req.IDs {
		switch v := raw.(type) {
		case float64:
			if v == math.Trunc(v) && v > 0 {
				ids = append(ids, int64(v))
			}
		case json.Number:
			if id, err := v.Int64(); err == nil && id > 0 {
				ids = append(ids, id)
			}
		}
	}

	deleted, err := h.svc.BulkDelete(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err, "User", "Failed to delete users")
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}

func (h *UsersHandler) DeleteCheck(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DeleteCheck(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "User", "Failed to check user dependencies")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Rooms(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	access, err := h.svc.Rooms(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "User", "Failed to fetch room access")
		return
	}
	c.JSON(http.StatusOK, access)
}

func (h *UsersHandler) ReplaceRooms(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReplaceRoomsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	access, err := h.svc.ReplaceRooms(c.Request.Context(), id, req.RoomIDs)
	if err != nil {
		respondError(c, err, "User", "Failed to update room access")
		return
	}
	c.JSON(http.StatusOK, access)
}
