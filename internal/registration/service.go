package registration

import (
	"context"
	"sort"
	"time"

	"gymslot/internal/apperr"
	"gymslot/internal/class"
	"gymslot/internal/directory"
	"gymslot/internal/email"
	"gymslot/internal/logger"
	"gymslot/internal/metrics"
	"gymslot/internal/schedule"
	"gymslot/internal/store"
)

// Service enrolls members into recurring class slots.
type Service interface {
	Register(ctx context.Context, classID, memberID string, day schedule.Weekday, iv schedule.Interval) error
	Unregister(ctx context.Context, classID, memberID string, day schedule.Weekday, iv schedule.Interval) error
	ListOccupants(ctx context.Context, classID string, day schedule.Weekday, iv schedule.Interval) ([]string, error)
	ListEligibleMembers(ctx context.Context, classID string, day schedule.Weekday, iv schedule.Interval) ([]string, error)
	ListMemberRegistrations(ctx context.Context, memberID string) ([]Registration, error)
}

type service struct {
	classes   class.Repository
	directory directory.Service
	notifier  email.Notifier
	now       func() time.Time
}

func NewService(classes class.Repository, dir directory.Service, notifier email.Notifier) Service {
	if notifier == nil {
		notifier = email.Noop{}
	}
	return &service{classes: classes, directory: dir, notifier: notifier, now: time.Now}
}

// Register checks, in order: the class exists, the slot is in its
// schedule, the member exists and belongs to the class gym, the member is
// not already in the slot, and the slot has room. The member is resolved
// before entering the critical section; its outcome is reported at its
// place in that order.
func (s *service) Register(ctx context.Context, classID, memberID string, day schedule.Weekday, iv schedule.Interval) error {
	const op = "registration.Register"
	slot := schedule.Slot{Day: day, Interval: iv}

	member, memberErr := s.directory.FindByID(ctx, memberID)

	var (
		className string
		occupied  int
	)
	err := s.classes.Write(ctx, func(tx *store.Tx[class.Class]) error {
		current, ok := tx.Peek(classID)
		if !ok {
			return apperr.NotFound(op, "class %q not found", classID)
		}
		if !current.Schedule.Has(day, iv) {
			return apperr.Validation(op, "class %q has no slot %s", classID, slot)
		}
		if memberErr != nil {
			return memberErr
		}
		if member.GymID != current.GymID {
			return apperr.Eligibility(op, "member %q does not belong to gym %q", memberID, current.GymID)
		}
		if current.Occupies(memberID, day, iv) {
			return apperr.Duplicate(op, "member %q is already registered for %s", memberID, slot)
		}
		if current.CountIn(day, iv) >= current.Capacity {
			return apperr.CapacityExceeded(op, "slot %s of class %q is full (%d)", slot, classID, current.Capacity)
		}

		c, _ := tx.Get(classID)
		c.Occupants = append(c.Occupants, class.Occupancy{
			MemberID:     memberID,
			Day:          day,
			Interval:     iv,
			RegisteredAt: s.now().UTC(),
		})
		className = c.Name
		occupied = c.CountIn(day, iv)
		return nil
	})
	if err != nil {
		metrics.RecordRegistration("register", apperr.KindOf(err).String())
		logger.Debug("registration rejected", "class_id", classID, "member_id", memberID, "slot", slot.String(), "error", err)
		return err
	}

	metrics.RecordRegistration("register", "ok")
	metrics.SetSlotOccupancy(classID, slot.String(), occupied)
	logger.Info("member registered", "class_id", classID, "member_id", memberID, "slot", slot.String(), "occupants", occupied)

	s.notify(ctx, member, className, slot, s.notifier.SendRegistrationConfirmation)
	return nil
}

func (s *service) Unregister(ctx context.Context, classID, memberID string, day schedule.Weekday, iv schedule.Interval) error {
	const op = "registration.Unregister"
	slot := schedule.Slot{Day: day, Interval: iv}

	var (
		className string
		occupied  int
	)
	err := s.classes.Write(ctx, func(tx *store.Tx[class.Class]) error {
		current, ok := tx.Peek(classID)
		if !ok {
			return apperr.NotFound(op, "class %q not found", classID)
		}
		if !current.Occupies(memberID, day, iv) {
			return apperr.NotFound(op, "member %q is not registered for %s", memberID, slot)
		}

		c, _ := tx.Get(classID)
		c.RemoveOccupant(memberID, day, iv)
		className = c.Name
		occupied = c.CountIn(day, iv)
		return nil
	})
	if err != nil {
		metrics.RecordRegistration("unregister", apperr.KindOf(err).String())
		logger.Debug("unregistration rejected", "class_id", classID, "member_id", memberID, "slot", slot.String(), "error", err)
		return err
	}

	metrics.RecordRegistration("unregister", "ok")
	metrics.SetSlotOccupancy(classID, slot.String(), occupied)
	logger.Info("member unregistered", "class_id", classID, "member_id", memberID, "slot", slot.String())

	member, err := s.directory.FindByID(ctx, memberID)
	if err != nil {
		logger.Debug("skipping cancellation notice", "member_id", memberID, "error", err)
		return nil
	}
	s.notify(ctx, member, className, slot, s.notifier.SendRegistrationCancelled)
	return nil
}

func (s *service) ListOccupants(ctx context.Context, classID string, day schedule.Weekday, iv schedule.Interval) ([]string, error) {
	c, err := s.slotClass(ctx, "registration.ListOccupants", classID, day, iv)
	if err != nil {
		return nil, err
	}
	return c.OccupantsOf(day, iv), nil
}

// ListEligibleMembers returns members of the class gym that are not in the
// slot yet, in directory order.
func (s *service) ListEligibleMembers(ctx context.Context, classID string, day schedule.Weekday, iv schedule.Interval) ([]string, error) {
	c, err := s.slotClass(ctx, "registration.ListEligibleMembers", classID, day, iv)
	if err != nil {
		return nil, err
	}

	members, err := s.directory.ListMembersByGym(ctx, c.GymID)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool)
	for _, id := range c.OccupantsOf(day, iv) {
		taken[id] = true
	}
	eligible := []string{}
	for _, m := range members {
		if !taken[m.ID] {
			eligible = append(eligible, m.ID)
		}
	}
	return eligible, nil
}

func (s *service) ListMemberRegistrations(ctx context.Context, memberID string) ([]Registration, error) {
	regs := []Registration{}
	err := s.classes.Read(ctx, func(v store.View[class.Class]) error {
		v.Each(func(c *class.Class) bool {
			for _, o := range c.Occupants {
				if o.MemberID == memberID {
					regs = append(regs, Registration{
						ClassID:      c.ID,
						ClassName:    c.Name,
						Day:          o.Day,
						Interval:     o.Interval,
						RegisteredAt: o.RegisteredAt,
					})
				}
			}
			return true
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(regs, func(i, j int) bool {
		a, b := regs[i], regs[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Interval.Start != b.Interval.Start {
			return a.Interval.Start < b.Interval.Start
		}
		return a.ClassName < b.ClassName
	})
	return regs, nil
}

// slotClass returns a copy of the class after checking the slot exists.
func (s *service) slotClass(ctx context.Context, op, classID string, day schedule.Weekday, iv schedule.Interval) (*class.Class, error) {
	var out *class.Class
	err := s.classes.Read(ctx, func(v store.View[class.Class]) error {
		c, ok := v.Peek(classID)
		if !ok {
			return apperr.NotFound(op, "class %q not found", classID)
		}
		if !c.Schedule.Has(day, iv) {
			return apperr.Validation(op, "class %q has no slot %s", classID, schedule.Slot{Day: day, Interval: iv})
		}
		out = c.Clone()
		return nil
	})
	return out, err
}

type registrationSender func(context.Context, email.RegistrationNotice) error

func (s *service) notify(ctx context.Context, member *directory.Person, className string, slot schedule.Slot, send registrationSender) {
	if member == nil || member.Email == "" {
		return
	}
	err := send(context.WithoutCancel(ctx), email.RegistrationNotice{
		MemberName:  member.Name,
		MemberEmail: member.Email,
		ClassName:   className,
		Slot:        slot.String(),
	})
	if err != nil {
		logger.Warn("registration notice not queued", "member_id", member.ID, "error", err)
	}
}
