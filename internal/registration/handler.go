package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymslot/internal/api"
	"gymslot/internal/auth"
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

// @Summary      Register for a class slot
// @Description  Members register themselves; staff and admins pass member_id
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        classID path string true "Class ID"
// @Param        request body registration.SlotRequest true "Slot"
// @Success      201 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /classes/{classID}/registrations [post]
func (h *Handler) Register(c *gin.Context) {
	memberID, day, iv, ok := h.bindSlot(c)
	if !ok {
		return
	}

	if err := h.service.Register(c.Request.Context(), c.Param("classID"), memberID, day, iv); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "registered"})
}

// @Summary      Cancel a class registration
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        classID path string true "Class ID"
// @Param        request body registration.SlotRequest true "Slot"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /classes/{classID}/registrations [delete]
func (h *Handler) Unregister(c *gin.Context) {
	memberID, day, iv, ok := h.bindSlot(c)
	if !ok {
		return
	}

	if err := h.service.Unregister(c.Request.Context(), c.Param("classID"), memberID, day, iv); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "unregistered"})
}

// @Summary      List slot occupants
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        classID path string true "Class ID"
// @Param        day query string true "Weekday, e.g. monday"
// @Param        time query string true "Interval, e.g. 09:00-10:00"
// @Success      200 {object} registration.OccupantsResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID}/occupants [get]
func (h *Handler) ListOccupants(c *gin.Context) {
	day, iv, err := ParseSlot(c.Query("day"), c.Query("time"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	ids, err := h.service.ListOccupants(c.Request.Context(), c.Param("classID"), day, iv)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OccupantsResponse{ClassID: c.Param("classID"), Day: day.String(), Time: iv.String(), MemberIDs: ids})
}

// @Summary      List members who could still register for a slot
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        classID path string true "Class ID"
// @Param        day query string true "Weekday, e.g. monday"
// @Param        time query string true "Interval, e.g. 09:00-10:00"
// @Success      200 {object} registration.OccupantsResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID}/eligible-members [get]
func (h *Handler) ListEligibleMembers(c *gin.Context) {
	day, iv, err := ParseSlot(c.Query("day"), c.Query("time"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	ids, err := h.service.ListEligibleMembers(c.Request.Context(), c.Param("classID"), day, iv)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OccupantsResponse{ClassID: c.Param("classID"), Day: day.String(), Time: iv.String(), MemberIDs: ids})
}

// @Summary      List a member's class registrations
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        memberID path string true "Member ID"
// @Success      200 {array} registration.Registration
// @Failure      403 {object} api.ErrorResponse
// @Router       /members/{memberID}/registrations [get]
func (h *Handler) ListMemberRegistrations(c *gin.Context) {
	memberID, err := auth.ActingFor(c, c.Param("memberID"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	regs, err := h.service.ListMemberRegistrations(c.Request.Context(), memberID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, regs)
}

func (h *Handler) bindSlot(c *gin.Context) (string, schedule.Weekday, schedule.Interval, bool) {
	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return "", 0, schedule.Interval{}, false
	}

	day, iv, err := ParseSlot(req.Day, req.Time)
	if err != nil {
		api.RespondError(c, err)
		return "", 0, schedule.Interval{}, false
	}

	memberID, err := auth.ActingFor(c, req.MemberID)
	if err != nil {
		api.RespondError(c, err)
		return "", 0, schedule.Interval{}, false
	}
	return memberID, day, iv, true
}
