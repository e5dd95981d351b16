package schedule

import (
	"strings"

	"gymslot/internal/apperr"
)

// Interval is a half-open time-of-day range. Its text form HH:MM-HH:MM is
// also the label of a class slot.
type Interval struct {
	Start Clock
	End   Clock
}

func NewInterval(start, end Clock) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func ParseInterval(s string) (Interval, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return Interval{}, apperr.Validation("parse interval", "interval %q must use HH:MM-HH:MM", s)
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end)
}

func (iv Interval) Validate() error {
	if !iv.Start.Valid() || !iv.End.Valid() {
		return apperr.Validation("validate interval", "interval %s has an out of range bound", iv)
	}
	if iv.End <= iv.Start {
		return apperr.Validation("validate interval", "interval %s must end after it starts", iv)
	}
	return nil
}

func (iv Interval) Minutes() int { return int(iv.End - iv.Start) }

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

func (iv Interval) MarshalText() ([]byte, error) {
	return []byte(iv.String()), nil
}

func (iv *Interval) UnmarshalText(b []byte) error {
	parsed, err := ParseInterval(string(b))
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}
