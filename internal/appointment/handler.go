package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymslot/internal/api"
	"gymslot/internal/apperr"
	"gymslot/internal/auth"
	"gymslot/internal/directory"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Book an appointment with a staff member
// @Description  Members book for themselves; staff and admins pass member_id
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body appointment.BookRequest true "Appointment"
// @Success      201 {object} appointment.Appointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /appointments [post]
func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	memberID, err := auth.ActingFor(c, req.MemberID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	req.MemberID = memberID

	appt, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// @Summary      List appointments
// @Description  Members only see their own appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        staff_id query string false "Staff ID"
// @Param        member_id query string false "Member ID"
// @Param        date query string false "Date, YYYY-MM-DD"
// @Success      200 {array} appointment.Appointment
// @Failure      400 {object} api.ErrorResponse
// @Router       /appointments [get]
func (h *Handler) List(c *gin.Context) {
	var filter Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		api.BindError(c, err)
		return
	}
	if isMember(c) {
		memberID, err := auth.ActingFor(c, filter.MemberID)
		if err != nil {
			api.RespondError(c, err)
			return
		}
		filter.MemberID = memberID
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path string true "Appointment ID"
// @Success      200 {object} appointment.Appointment
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /appointments/{appointmentID} [get]
func (h *Handler) Get(c *gin.Context) {
	appt, ok := h.owned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, appt)
}

// @Summary      Move an appointment to another date and time
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path string true "Appointment ID"
// @Param        request body appointment.RescheduleRequest true "New slot"
// @Success      200 {object} appointment.Appointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /appointments/{appointmentID}/schedule [put]
func (h *Handler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}
	if _, ok := h.owned(c); !ok {
		return
	}

	appt, err := h.service.Reschedule(c.Request.Context(), c.Param("appointmentID"), req.Date, req.Time)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// @Summary      Mark an appointment paid or pending
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path string true "Appointment ID"
// @Param        request body appointment.StatusRequest true "Status"
// @Success      200 {object} appointment.Appointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /appointments/{appointmentID}/status [put]
func (h *Handler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	appt, err := h.service.SetStatus(c.Request.Context(), c.Param("appointmentID"), req.Status)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path string true "Appointment ID"
// @Success      200 {object} api.MessageResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /appointments/{appointmentID} [delete]
func (h *Handler) Cancel(c *gin.Context) {
	if _, ok := h.owned(c); !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), c.Param("appointmentID")); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "appointment cancelled"})
}

// @Summary      Check whether a staff member is free
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        staff_id query string true "Staff ID"
// @Param        date query string true "Date, YYYY-MM-DD"
// @Param        time query string true "Time, HH:MM"
// @Param        exclude_id query string false "Appointment to ignore"
// @Success      200 {object} appointment.AvailabilityResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /appointments/availability [get]
func (h *Handler) Availability(c *gin.Context) {
	staffID := c.Query("staff_id")
	if staffID == "" {
		api.BadRequest(c, "staff_id is required")
		return
	}
	date, at := c.Query("date"), c.Query("time")

	taken, err := h.service.IsDoubleBooked(c.Request.Context(), staffID, date, at, c.Query("exclude_id"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{StaffID: staffID, Date: date, Time: at, Available: !taken})
}

// owned loads the path appointment and rejects members asking about
// someone else's. It writes the error response itself.
func (h *Handler) owned(c *gin.Context) (*Appointment, bool) {
	appt, err := h.service.Get(c.Request.Context(), c.Param("appointmentID"))
	if err != nil {
		api.RespondError(c, err)
		return nil, false
	}
	if isMember(c) {
		callerID, _ := auth.GetUserID(c)
		if appt.MemberID != callerID {
			api.RespondError(c, apperr.Eligibility("appointment.owned", "appointment belongs to another member"))
			return nil, false
		}
	}
	return appt, true
}

func isMember(c *gin.Context) bool {
	role, _ := auth.GetUserRole(c)
	return role == string(directory.RoleMember)
}
