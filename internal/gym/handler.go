package gym

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymslot/internal/api"
	"gymslot/internal/schedule"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Weekly timetable of a gym
// @Description  Every class slot at the gym with its booked and free places
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path string true "Gym ID"
// @Param        day query string false "Only this weekday, e.g. monday"
// @Success      200 {object} gym.Timetable
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /gyms/{gymID}/timetable [get]
func (h *Handler) GetTimetable(c *gin.Context) {
	var day *schedule.Weekday
	if raw := c.Query("day"); raw != "" {
		d, err := schedule.ParseWeekday(raw)
		if err != nil {
			api.RespondError(c, err)
			return
		}
		day = &d
	}

	tt, err := h.service.GetTimetable(c.Request.Context(), c.Param("gymID"), day)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tt)
}
