package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"gymslot/internal/apperr"
)

type FieldError struct {
	Field   string `json:"field" example:"capacity"`
	Tag     string `json:"tag" example:"min"`
	Message string `json:"message" example:"capacity must be at least 1"`
}

type ValidationErrorResponse struct {
	Error   string       `json:"error" example:"validation failed"`
	Kind    string       `json:"kind" example:"validation"`
	Details []FieldError `json:"details"`
}

// BindError reports a request that failed to bind. Validator failures are
// listed per field; anything else (malformed JSON, wrong types) is a plain
// bad request.
func BindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	details := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:   "validation failed",
		Kind:    apperr.KindValidation.String(),
		Details: details,
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "lte":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
