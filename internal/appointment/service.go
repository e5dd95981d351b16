package appointment

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"gymslot/internal/apperr"
	"gymslot/internal/directory"
	"gymslot/internal/email"
	"gymslot/internal/logger"
	"gymslot/internal/metrics"
	"gymslot/internal/schedule"
	"gymslot/internal/store"
)

// Service books one-off appointments between members and staff. A staff
// member holds at most one appointment per date and time.
type Service interface {
	Book(ctx context.Context, req BookRequest) (*Appointment, error)
	Reschedule(ctx context.Context, id, date, at string) (*Appointment, error)
	Cancel(ctx context.Context, id string) error
	IsDoubleBooked(ctx context.Context, staffID, date, at, excludeID string) (bool, error)
	SetStatus(ctx context.Context, id, status string) (*Appointment, error)
	Get(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter Filter) ([]*Appointment, error)
}

type service struct {
	repo      Repository
	directory directory.Service
	prices    *PriceTable
	notifier  email.Notifier
	now       func() time.Time
}

func NewService(repo Repository, dir directory.Service, prices *PriceTable, notifier email.Notifier) Service {
	if prices == nil {
		prices = DefaultPriceTable()
	}
	if notifier == nil {
		notifier = email.Noop{}
	}
	return &service{repo: repo, directory: dir, prices: prices, notifier: notifier, now: time.Now}
}

func (s *service) Book(ctx context.Context, req BookRequest) (*Appointment, error) {
	const op = "appointment.Book"

	appt, err := s.book(ctx, op, req)
	if err != nil {
		metrics.RecordAppointment("book", apperr.KindOf(err).String())
		logger.Debug("appointment rejected", "staff_id", req.StaffID, "member_id", req.MemberID,
			"date", req.Date, "time", req.Time, "error", err)
		return nil, err
	}

	metrics.RecordAppointment("book", "ok")
	logger.Info("appointment booked", "appointment_id", appt.ID, "staff_id", appt.StaffID,
		"member_id", appt.MemberID, "date", appt.Date.String(), "time", appt.Time.String(), "cost_cents", appt.CostCents)

	s.notify(ctx, appt, "", s.notifier.SendAppointmentConfirmation)
	return appt.Clone(), nil
}

func (s *service) book(ctx context.Context, op string, req BookRequest) (*Appointment, error) {
	date, at, err := parseSlot(op, req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	staff, err := s.directory.FindByID(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.Role.IsStaff() {
		return nil, apperr.Validation(op, "%q is not a staff member", req.StaffID)
	}
	if _, err := s.directory.FindByID(ctx, req.MemberID); err != nil {
		return nil, err
	}
	cost := s.prices.PriceFor(staff.Activity)

	now := s.now().UTC()
	appt := &Appointment{
		ID:        uuid.NewString(),
		MemberID:  req.MemberID,
		StaffID:   req.StaffID,
		Date:      date,
		Time:      at,
		CostCents: cost,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Write(ctx, func(tx *store.Tx[Appointment]) error {
		if holder := findHolder(tx, appt.StaffID, date, at, ""); holder != "" {
			return apperr.DoubleBooking(op, "staff %q already has appointment %q at %s %s", appt.StaffID, holder, date, at)
		}
		tx.Put(appt.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *service) Reschedule(ctx context.Context, id, date, at string) (*Appointment, error) {
	const op = "appointment.Reschedule"

	newDate, newTime, err := parseSlot(op, date, at)
	if err != nil {
		metrics.RecordAppointment("reschedule", apperr.KindOf(err).String())
		return nil, err
	}

	var (
		out      *Appointment
		previous string
	)
	err = s.repo.Write(ctx, func(tx *store.Tx[Appointment]) error {
		if _, ok := tx.Peek(id); !ok {
			return apperr.NotFound(op, "appointment %q not found", id)
		}
		a, _ := tx.Get(id)
		if holder := findHolder(tx, a.StaffID, newDate, newTime, id); holder != "" {
			return apperr.DoubleBooking(op, "staff %q already has appointment %q at %s %s", a.StaffID, holder, newDate, newTime)
		}
		previous = a.Date.String() + " " + a.Time.String()
		a.Date = newDate
		a.Time = newTime
		a.UpdatedAt = s.now().UTC()
		out = a.Clone()
		return nil
	})
	if err != nil {
		metrics.RecordAppointment("reschedule", apperr.KindOf(err).String())
		logger.Debug("reschedule rejected", "appointment_id", id, "date", date, "time", at, "error", err)
		return nil, err
	}

	metrics.RecordAppointment("reschedule", "ok")
	logger.Info("appointment rescheduled", "appointment_id", id, "from", previous,
		"date", out.Date.String(), "time", out.Time.String())

	s.notify(ctx, out, previous, s.notifier.SendAppointmentRescheduled)
	return out, nil
}

func (s *service) Cancel(ctx context.Context, id string) error {
	const op = "appointment.Cancel"

	var removed *Appointment
	err := s.repo.Write(ctx, func(tx *store.Tx[Appointment]) error {
		a, ok := tx.Peek(id)
		if !ok {
			return apperr.NotFound(op, "appointment %q not found", id)
		}
		removed = a.Clone()
		tx.Delete(id)
		return nil
	})
	if err != nil {
		metrics.RecordAppointment("cancel", apperr.KindOf(err).String())
		logger.Debug("cancel rejected", "appointment_id", id, "error", err)
		return err
	}

	metrics.RecordAppointment("cancel", "ok")
	logger.Info("appointment cancelled", "appointment_id", id, "staff_id", removed.StaffID)

	s.notify(ctx, removed, "", s.notifier.SendAppointmentCancellation)
	return nil
}

// IsDoubleBooked reports whether an appointment other than excludeID holds
// the staff member's slot.
func (s *service) IsDoubleBooked(ctx context.Context, staffID, date, at, excludeID string) (bool, error) {
	d, c, err := parseSlot("appointment.IsDoubleBooked", date, at)
	if err != nil {
		return false, err
	}

	var taken bool
	err = s.repo.Read(ctx, func(v store.View[Appointment]) error {
		taken = findHolder(v, staffID, d, c, excludeID) != ""
		return nil
	})
	return taken, err
}

func (s *service) SetStatus(ctx context.Context, id, status string) (*Appointment, error) {
	const op = "appointment.SetStatus"

	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var out *Appointment
	err = s.repo.Write(ctx, func(tx *store.Tx[Appointment]) error {
		current, ok := tx.Peek(id)
		if !ok {
			return apperr.NotFound(op, "appointment %q not found", id)
		}
		if current.Status == st {
			out = current.Clone()
			return nil
		}
		a, _ := tx.Get(id)
		a.Status = st
		a.UpdatedAt = s.now().UTC()
		out = a.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("appointment status changed", "appointment_id", id, "status", string(out.Status))
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (*Appointment, error) {
	var out *Appointment
	err := s.repo.Read(ctx, func(v store.View[Appointment]) error {
		a, ok := v.Peek(id)
		if !ok {
			return apperr.NotFound("appointment.Get", "appointment %q not found", id)
		}
		out = a.Clone()
		return nil
	})
	return out, err
}

// List returns matching appointments ordered by date, time and id.
func (s *service) List(ctx context.Context, filter Filter) ([]*Appointment, error) {
	var (
		date    schedule.Date
		hasDate bool
	)
	if filter.Date != "" {
		d, err := schedule.ParseDate(filter.Date)
		if err != nil {
			return nil, err
		}
		date, hasDate = d, true
	}

	out := []*Appointment{}
	err := s.repo.Read(ctx, func(v store.View[Appointment]) error {
		v.Each(func(a *Appointment) bool {
			if filter.StaffID != "" && a.StaffID != filter.StaffID {
				return true
			}
			if filter.MemberID != "" && a.MemberID != filter.MemberID {
				return true
			}
			if hasDate && a.Date != date {
				return true
			}
			out = append(out, a.Clone())
			return true
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})
	return out, nil
}

// findHolder returns the id of the appointment occupying the slot, or "".
func findHolder(v store.View[Appointment], staffID string, date schedule.Date, at schedule.Clock, excludeID string) string {
	var holder string
	v.Each(func(a *Appointment) bool {
		if a.ID != excludeID && a.At(staffID, date, at) {
			holder = a.ID
			return false
		}
		return true
	})
	return holder
}

type appointmentSender func(context.Context, email.AppointmentNotice) error

func (s *service) notify(ctx context.Context, a *Appointment, previous string, send appointmentSender) {
	ctx = context.WithoutCancel(ctx)

	member, err := s.directory.FindByID(ctx, a.MemberID)
	if err != nil || member.Email == "" {
		logger.Debug("skipping appointment notice", "appointment_id", a.ID, "member_id", a.MemberID, "error", err)
		return
	}
	var staffName string
	if staff, err := s.directory.FindByID(ctx, a.StaffID); err == nil {
		staffName = staff.Name
	}

	err = send(ctx, email.AppointmentNotice{
		MemberName:  member.Name,
		MemberEmail: member.Email,
		StaffName:   staffName,
		Date:        a.Date.String(),
		Time:        a.Time.String(),
		CostCents:   a.CostCents,
		Previous:    previous,
	})
	if err != nil {
		logger.Warn("appointment notice not queued", "appointment_id", a.ID, "error", err)
	}
}
