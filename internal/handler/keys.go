package handler

import (
	"encoding/json"
	"net/http"

	"deptdash/internal/apierror"
	"deptdash/internal/dto"
	"deptdash/internal/service"

	"github.com/gin-gonic/gin"
)

type KeysHandler struct{ svc service.KeyService }

func NewKeysHandler(svc service.KeyService) *KeysHandler {
	return &KeysHandler{svc: svc}
}

func (h *KeysHandler) Create(c *gin.Context) {
	var req dto.CreateKeyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	k, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Key", "Failed to create key")
		return
	}
	c.JSON(http.StatusCreated, k)
}

func (h *KeysHandler) List(c *gin.Context) {
	keys, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Key", "Failed to fetch keys")
		return
	}
	c.JSON(http.StatusOK, keys)
}

func (h *KeysHandler) GetByNumber(c *gin.Context) {
	number, ok := pathID(c, "number")
	if !ok {
		return
	}
	k, err := h.svc.GetByNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, err, "Key", "Failed to fetch key")
		return
	}
	c.JSON(http.StatusOK, k)
}

// Update only touches userId, and only when the caller actually sent the
// field. An explicit null clears the assignment.
func (h *KeysHandler) Update(c *gin.Context) {
	number, ok := pathID(c, "number")
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return
	}
	raw, present := body["userId"]
	if !present {
		c.JSON(http.StatusBadRequest, apierror.New("No updatable fields were provided."))
		return
	}
	var userID *int64
	if err := json.Unmarshal(raw, &userID); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid userId."))
		return
	}

	k, err := h.svc.UpdateOwner(c.Request.Context(), number, userID)
	if err != nil {
		respondError(c, err, "Key", "Failed to update key.")
		return
	}
	c.JSON(http.StatusOK, k)
}

func (h *KeysHandler) Delete(c *gin.Context) {
	number, ok := pathID(c, "number")
	if !ok {
		return
	}
	k, err := h.svc.Delete(c.Request.Context(), number)
	if err != nil {
		respondError(c, err, "Key", "Failed to delete key")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Key deleted successfully", "deletedKey": k})
}
