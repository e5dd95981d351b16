package class

import (
	"time"

	"gymslot/internal/schedule"
)

type Class struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	StaffID   string          `json:"staff_id"`
	GymID     string          `json:"gym_id"`
	Schedule  schedule.Weekly `json:"schedule"`
	Capacity  int             `json:"capacity"`
	Occupants []Occupancy     `json:"occupants"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Occupancy is one member registered into one recurring slot of a class.
type Occupancy struct {
	MemberID     string            `json:"member_id"`
	Day          schedule.Weekday  `json:"day"`
	Interval     schedule.Interval `json:"time"`
	RegisteredAt time.Time         `json:"registered_at"`
}

func (o Occupancy) Slot() schedule.Slot {
	return schedule.Slot{Day: o.Day, Interval: o.Interval}
}

func (c *Class) Clone() *Class {
	out := *c
	out.Schedule = c.Schedule.Clone()
	out.Occupants = append([]Occupancy(nil), c.Occupants...)
	return &out
}

// OccupantsOf returns the member ids registered into the slot, in
// registration order.
func (c *Class) OccupantsOf(day schedule.Weekday, iv schedule.Interval) []string {
	ids := []string{}
	for _, o := range c.Occupants {
		if o.Day == day && o.Interval == iv {
			ids = append(ids, o.MemberID)
		}
	}
	return ids
}

func (c *Class) CountIn(day schedule.Weekday, iv schedule.Interval) int {
	n := 0
	for _, o := range c.Occupants {
		if o.Day == day && o.Interval == iv {
			n++
		}
	}
	return n
}

func (c *Class) Occupies(memberID string, day schedule.Weekday, iv schedule.Interval) bool {
	for _, o := range c.Occupants {
		if o.MemberID == memberID && o.Day == day && o.Interval == iv {
			return true
		}
	}
	return false
}

// RemoveOccupant drops the member's occupancy of the slot and reports
// whether there was one.
func (c *Class) RemoveOccupant(memberID string, day schedule.Weekday, iv schedule.Interval) bool {
	for i, o := range c.Occupants {
		if o.MemberID == memberID && o.Day == day && o.Interval == iv {
			c.Occupants = append(c.Occupants[:i:i], c.Occupants[i+1:]...)
			return true
		}
	}
	return false
}

// ClassView is a class enriched with directory display names.
type ClassView struct {
	Class
	StaffName string `json:"staff_name"`
	GymName   string `json:"gym_name"`
}

type DefineClassRequest struct {
	Name     string          `json:"name" binding:"required"`
	StaffID  string          `json:"staff_id" binding:"required"`
	GymID    string          `json:"gym_id" binding:"required"`
	Schedule schedule.Weekly `json:"schedule"`
	Capacity int             `json:"capacity" binding:"required,min=1"`
}

// ClassPatch updates the non-nil fields of a class.
type ClassPatch struct {
	Name     *string          `json:"name,omitempty"`
	StaffID  *string          `json:"staff_id,omitempty"`
	GymID    *string          `json:"gym_id,omitempty"`
	Schedule *schedule.Weekly `json:"schedule,omitempty"`
	Capacity *int             `json:"capacity,omitempty"`
}

func (p ClassPatch) Empty() bool {
	return p.Name == nil && p.StaffID == nil && p.GymID == nil && p.Schedule == nil && p.Capacity == nil
}
