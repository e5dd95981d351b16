package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gymslot/internal/api"
	"gymslot/internal/email"
)

type TestEmailRequest struct {
	Email string `json:"email" binding:"required,email" example:"member@example.com"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// @Summary      Queue a test email
// @Tags         system
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body server.TestEmailRequest true "Recipient"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/test-email [post]
func TestEmail(emailService *email.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TestEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			api.BindError(c, err)
			return
		}

		err := emailService.Send(c.Request.Context(), email.TypeTest, req.Email, "GymSlot Admin",
			"Test Email from GymSlot", "Email delivery is working!")
		if err != nil {
			api.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, api.MessageResponse{Message: "Email queued successfully"})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
