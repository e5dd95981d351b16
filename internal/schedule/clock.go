package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"gymslot/internal/apperr"
)

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

const minutesPerDay = 24 * 60

func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, apperr.Validation("parse time", "time %02d:%02d is out of range", hour, minute)
	}
	return Clock(hour*60 + minute), nil
}

// ParseClock accepts exactly HH:MM.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return 0, apperr.Validation("parse time", "time %q must use HH:MM", s)
	}
	h, herr := strconv.Atoi(s[:2])
	m, merr := strconv.Atoi(s[3:])
	if herr != nil || merr != nil || s[0] == '+' || s[3] == '+' {
		return 0, apperr.Validation("parse time", "time %q must use HH:MM", s)
	}
	return NewClock(h, m)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) Valid() bool { return c >= 0 && c < minutesPerDay }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	parsed, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
