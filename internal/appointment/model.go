package appointment

import (
	"strings"
	"time"

	"gymslot/internal/apperr"
	"gymslot/internal/schedule"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// ParseStatus accepts pending or paid; empty means pending.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StatusPending, nil
	case StatusPending, StatusPaid:
		return st, nil
	default:
		return "", apperr.Validation("parse status", "status %q must be pending or paid", s)
	}
}

type Appointment struct {
	ID        string         `json:"id"`
	MemberID  string         `json:"member_id"`
	StaffID   string         `json:"staff_id"`
	Date      schedule.Date  `json:"date" swaggertype:"string" example:"2025-03-10"`
	Time      schedule.Clock `json:"time" swaggertype:"string" example:"10:00"`
	CostCents int64          `json:"cost_cents"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (a *Appointment) Clone() *Appointment {
	out := *a
	return &out
}

// At reports whether the appointment occupies the staff member's slot.
func (a *Appointment) At(staffID string, date schedule.Date, at schedule.Clock) bool {
	return a.StaffID == staffID && a.Date == date && a.Time == at
}

type BookRequest struct {
	MemberID string `json:"member_id"`
	StaffID  string `json:"staff_id" binding:"required"`
	Date     string `json:"date" binding:"required" example:"2025-03-10"`
	Time     string `json:"time" binding:"required" example:"10:00"`
	Status   string `json:"status,omitempty" example:"pending"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required" example:"2025-03-10"`
	Time string `json:"time" binding:"required" example:"11:00"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required" example:"paid"`
}

// Filter narrows List; empty fields match everything.
type Filter struct {
	StaffID  string `form:"staff_id"`
	MemberID string `form:"member_id"`
	Date     string `form:"date"`
}

type AvailabilityResponse struct {
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func parseSlot(op, date, at string) (schedule.Date, schedule.Clock, error) {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return schedule.Date{}, 0, apperr.Validation(op, "date %q must use YYYY-MM-DD", date)
	}
	c, err := schedule.ParseClock(at)
	if err != nil {
		return schedule.Date{}, 0, apperr.Validation(op, "time %q must use HH:MM", at)
	}
	return d, c, nil
}
