package registration

import (
	"time"

	"gymslot/internal/schedule"
)

// Registration is one of a member's class enrollments.
type Registration struct {
	ClassID      string            `json:"class_id"`
	ClassName    string            `json:"class_name"`
	Day          schedule.Weekday  `json:"day"`
	Interval     schedule.Interval `json:"time"`
	RegisteredAt time.Time         `json:"registered_at"`
}

// SlotRequest addresses a recurring class slot, e.g. day "monday" and
// time "09:00-10:00". MemberID defaults to the caller.
type SlotRequest struct {
	MemberID string `json:"member_id"`
	Day      string `json:"day" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

type OccupantsResponse struct {
	ClassID   string   `json:"class_id"`
	Day       string   `json:"day"`
	Time      string   `json:"time"`
	MemberIDs []string `json:"member_ids"`
}

// ParseSlot reads a day name and an HH:MM-HH:MM interval.
func ParseSlot(day, interval string) (schedule.Weekday, schedule.Interval, error) {
	d, err := schedule.ParseWeekday(day)
	if err != nil {
		return 0, schedule.Interval{}, err
	}
	iv, err := schedule.ParseInterval(interval)
	if err != nil {
		return 0, schedule.Interval{}, err
	}
	return d, iv, nil
}
