package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymslot/internal/apperr"
	"gymslot/internal/logger"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Kind  string `json:"kind,omitempty" example:"capacity_exceeded"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindEligibility:
		return http.StatusForbidden
	case apperr.KindDuplicate, apperr.KindCapacityExceeded, apperr.KindDoubleBooking:
		return http.StatusConflict
	case apperr.KindOperationAborted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an ErrorResponse. Storage and unclassified
// failures are logged and their details are not exposed.
func RespondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		msg = "internal error"
	}
	c.JSON(status, ErrorResponse{Error: msg, Kind: kind.String()})
}

// BadRequest reports a malformed request that never reached a service.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Kind: apperr.KindValidation.String()})
}
