package schedule

import (
	"fmt"
	"sort"

	"gymslot/internal/apperr"
)

// Weekly maps each day to its ordered availability. A missing or empty day
// means no availability. Intervals of the same day are not checked for
// mutual overlap.
type Weekly map[Weekday][]Interval

// Validate checks day keys, interval bounds, and rejects the same interval
// listed twice on one day since slots are addressed by (day, interval).
func (w Weekly) Validate() error {
	for day, intervals := range w {
		if !day.Valid() {
			return apperr.Validation("validate schedule", "unrecognized weekday %d", int(day))
		}
		seen := make(map[Interval]bool, len(intervals))
		for _, iv := range intervals {
			if err := iv.Validate(); err != nil {
				return fmt.Errorf("%s: %w", day, err)
			}
			if seen[iv] {
				return apperr.Validation("validate schedule", "%s: interval %s listed twice", day, iv)
			}
			seen[iv] = true
		}
	}
	return nil
}

// Has reports whether iv is one of the intervals listed for day.
func (w Weekly) Has(day Weekday, iv Interval) bool {
	for _, candidate := range w[day] {
		if candidate == iv {
			return true
		}
	}
	return false
}

// Days returns the days that have at least one interval, in calendar order.
func (w Weekly) Days() []Weekday {
	days := make([]Weekday, 0, len(w))
	for _, d := range Weekdays {
		if len(w[d]) > 0 {
			days = append(days, d)
		}
	}
	return days
}

// Slots enumerates every (day, interval) pair in calendar then start order.
func (w Weekly) Slots() []Slot {
	var slots []Slot
	for _, d := range w.Days() {
		ivs := append([]Interval(nil), w[d]...)
		sort.SliceStable(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
		for _, iv := range ivs {
			slots = append(slots, Slot{Day: d, Interval: iv})
		}
	}
	return slots
}

func (w Weekly) Clone() Weekly {
	if w == nil {
		return nil
	}
	out := make(Weekly, len(w))
	for d, ivs := range w {
		out[d] = append([]Interval(nil), ivs...)
	}
	return out
}

// Slot addresses one recurring occurrence within a weekly schedule.
type Slot struct {
	Day      Weekday  `json:"day"`
	Interval Interval `json:"time"`
}

func (s Slot) String() string {
	return s.Day.String() + " " + s.Interval.String()
}
