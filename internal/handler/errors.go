package handler

import (
	"errors"
	"net/http"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInternal    = errors.New("internal server error")
	errInvalidBody = errors.New("invalid request body")
)

// respondError maps service errors onto status codes. Storage details are
// logged, never returned to the caller.
func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.NewFieldErrorResponse(validationErr.Field, validationErr.Message))
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, notFoundErr.Error()))
	default:
		h.logger.Sugar().Errorf("request %s %s failed: %s", c.Request.Method, c.Request.URL.Path, err.Error())
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, errInternal.Error()))
	}
}

func (h *Handler) respondBindError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := jsonFieldName(fieldErrs[0])
		c.JSON(http.StatusBadRequest, dto.NewFieldErrorResponse(field, field+" is required"))
		return
	}

	c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidBody.Error()))
}
