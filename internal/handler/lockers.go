package handler

import (
	"net/http"

	"deptdash/internal/dto"
	"deptdash/internal/service"

	"github.com/gin-gonic/gin"
)

type LockersHandler struct{ svc service.LockerService }

func NewLockersHandler(svc service.LockerService) *LockersHandler {
	return &LockersHandler{svc: svc}
}

func (h *LockersHandler) Create(c *gin.Context) {
	var req dto.CreateLockerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	l, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Locker", "Failed to create locker")
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *LockersHandler) List(c *gin.Context) {
	lockers, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Locker", "Failed to fetch lockers")
		return
	}
	c.JSON(http.StatusOK, lockers)
}

func (h *LockersHandler) Update(c *gin.Context) {
	number, ok := pathID(c, "number")
	if !ok {
		return
	}
	var req dto.UpdateLockerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	l, err := h.svc.Update(c.Request.Context(), number, req)
	if err != nil {
		respondError(c, err, "Locker", "Failed to update locker.")
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LockersHandler) Delete(c *gin.Context) {
	number, ok := pathID(c, "number")
	if !ok {
		return
	}
	l, err := h.svc.Delete(c.Request.Context(), number)
	if err != nil {
		respondError(c, err, "Locker", "Failed to delete locker")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Locker deleted successfully", "deletedLocker": l})
}
