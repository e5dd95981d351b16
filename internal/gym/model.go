package gym

import (
	"gymslot/internal/directory"
	"gymslot/internal/schedule"
)

// SlotAvailability is one recurring class slot with its current load.
type SlotAvailability struct {
	ClassID     string            `json:"class_id"`
	ClassName   string            `json:"class_name"`
	Day         schedule.Weekday  `json:"day" swaggertype:"string" example:"monday"`
	Interval    schedule.Interval `json:"time" swaggertype:"string" example:"09:00-10:00"`
	Capacity    int               `json:"capacity"`
	BookedCount int               `json:"booked_count"`
	Available   int               `json:"available"`
	IsFull      bool              `json:"is_full"`
}

type Timetable struct {
	Gym   directory.Gym      `json:"gym"`
	Slots []SlotAvailability `json:"slots"`
}
