package handler

import (
	"errors"
	"net/http"
	"strconv"

	"deptdash/internal/apierror"
	"deptdash/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails; the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses a positive integer path parameter. Writes a 400 and returns
// false when the value is not a usable id.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name+"."))
		return 0, false
	}
	return id, true
}

// respondError translates service/store errors at the handler boundary:
// not-found and conflicts become typed client errors, everything else is
// logged by the error middleware and answered with a generic message.
func respondError(c *gin.Context, err error, entity, fallback string) {
	var conflict *service.Conflict
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, apierror.New(entity+" not found"))
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, apierror.NewWithCode(conflict.Detail, conflict.Code))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusBadRequest, apierror.New("Referenced record does not exist."))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New(fallback))
	}
}
