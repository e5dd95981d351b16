// Package scheduletest provides fixture helpers for tests that build
// schedules by hand.
package scheduletest

import "gymslot/internal/schedule"

// Interval parses s as HH:MM-HH:MM and panics if it is malformed.
func Interval(s string) schedule.Interval {
	iv, err := schedule.ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return iv
}
