package gym

import (
	"context"
	"sort"

	"gymslot/internal/class"
	"gymslot/internal/directory"
	"gymslot/internal/schedule"
	"gymslot/internal/store"
)

// Service answers "what can I book at this gym this week".
type Service interface {
	GetTimetable(ctx context.Context, gymID string, day *schedule.Weekday) (*Timetable, error)
}

type service struct {
	classes   class.Repository
	directory directory.Service
}

func NewService(classes class.Repository, dir directory.Service) Service {
	return &service{classes: classes, directory: dir}
}

// GetTimetable lists every slot of every class held at the gym, optionally
// restricted to one weekday, ordered by day, start time and class name.
// Classes whose capacity was lowered below their occupants report zero
// availability rather than a negative count.
func (s *service) GetTimetable(ctx context.Context, gymID string, day *schedule.Weekday) (*Timetable, error) {
	g, err := s.directory.GetGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	slots := []SlotAvailability{}
	err = s.classes.Read(ctx, func(v store.View[class.Class]) error {
		v.Each(func(c *class.Class) bool {
			if c.GymID != gymID {
				return true
			}
			for _, slot := range c.Schedule.Slots() {
				if day != nil && slot.Day != *day {
					continue
				}
				booked := c.CountIn(slot.Day, slot.Interval)
				available := c.Capacity - booked
				if available < 0 {
					available = 0
				}
				slots = append(slots, SlotAvailability{
					ClassID:     c.ID,
					ClassName:   c.Name,
					Day:         slot.Day,
					Interval:    slot.Interval,
					Capacity:    c.Capacity,
					BookedCount: booked,
					Available:   available,
					IsFull:      available == 0,
				})
			}
			return true
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Interval.Start != b.Interval.Start {
			return a.Interval.Start < b.Interval.Start
		}
		if a.ClassName != b.ClassName {
			return a.ClassName < b.ClassName
		}
		return a.ClassID < b.ClassID
	})

	return &Timetable{Gym: *g, Slots: slots}, nil
}
