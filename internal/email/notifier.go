package email

import (
	"context"
	"fmt"
)

// Email types, also used as metric labels.
const (
	TypeRegistrationConfirmed = "registration_confirmed"
	TypeRegistrationCancelled = "registration_cancelled"
	TypeAppointmentConfirmed  = "appointment_confirmed"
	TypeAppointmentMoved      = "appointment_rescheduled"
	TypeAppointmentCancelled  = "appointment_cancelled"
	TypeTest                  = "test"
)

type RegistrationNotice struct {
	MemberName  string
	MemberEmail string
	ClassName   string
	Slot        string
}

type AppointmentNotice struct {
	MemberName  string
	MemberEmail string
	StaffName   string
	Date        string
	Time        string
	CostCents   int64
	Previous    string
}

// Notifier tells members about committed bookings.
type Notifier interface {
	SendRegistrationConfirmation(ctx context.Context, n RegistrationNotice) error
	SendRegistrationCancelled(ctx context.Context, n RegistrationNotice) error
	SendAppointmentConfirmation(ctx context.Context, n AppointmentNotice) error
	SendAppointmentRescheduled(ctx context.Context, n AppointmentNotice) error
	SendAppointmentCancellation(ctx context.Context, n AppointmentNotice) error
}

func (s *Service) SendRegistrationConfirmation(ctx context.Context, n RegistrationNotice) error {
	subject := "Class Registration Confirmed - " + n.ClassName
	body := fmt.Sprintf(`Hi %s,

You are registered for %s.

Slot: %s (every week)

See you at the gym!

- GymSlot Team`, n.MemberName, n.ClassName, n.Slot)

	return s.Send(ctx, TypeRegistrationConfirmed, n.MemberEmail, n.MemberName, subject, body)
}

func (s *Service) SendRegistrationCancelled(ctx context.Context, n RegistrationNotice) error {
	subject := "Class Registration Cancelled - " + n.ClassName
	body := fmt.Sprintf(`Hi %s,

Your registration for %s has been cancelled:

Slot: %s


- GymSlot Team`, n.MemberName, n.ClassName, n.Slot)

	return s.Send(ctx, TypeRegistrationCancelled, n.MemberEmail, n.MemberName, subject, body)
}

func (s *Service) SendAppointmentConfirmation(ctx context.Context, n AppointmentNotice) error {
	subject := "Appointment Confirmed - " + n.StaffName
	body := fmt.Sprintf(`Hi %s,

Your appointment is confirmed!

With: %s
Date: %s
Time: %s
Cost: %s

- GymSlot Team`, n.MemberName, n.StaffName, n.Date, n.Time, FormatCents(n.CostCents))

	return s.Send(ctx, TypeAppointmentConfirmed, n.MemberEmail, n.MemberName, subject, body)
}

func (s *Service) SendAppointmentRescheduled(ctx context.Context, n AppointmentNotice) error {
	subject := "Appointment Rescheduled - " + n.StaffName
	body := fmt.Sprintf(`Hi %s,

Your appointment with %s has moved.

Was: %s
Now: %s at %s

- GymSlot Team`, n.MemberName, n.StaffName, n.Previous, n.Date, n.Time)

	return s.Send(ctx, TypeAppointmentMoved, n.MemberEmail, n.MemberName, subject, body)
}

func (s *Service) SendAppointmentCancellation(ctx context.Context, n AppointmentNotice) error {
	subject := "Appointment Cancelled - " + n.StaffName
	body := fmt.Sprintf(`Hi %s,

Your appointment has been cancelled:

With: %s
Date: %s
Time: %s


- GymSlot Team`, n.MemberName, n.StaffName, n.Date, n.Time)

	return s.Send(ctx, TypeAppointmentCancelled, n.MemberEmail, n.MemberName, subject, body)
}

// FormatCents renders an amount such as 4500 as "45.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Noop drops every notification.
type Noop struct{}

func (Noop) SendRegistrationConfirmation(context.Context, RegistrationNotice) error { return nil }
func (Noop) SendRegistrationCancelled(context.Context, RegistrationNotice) error    { return nil }
func (Noop) SendAppointmentConfirmation(context.Context, AppointmentNotice) error   { return nil }
func (Noop) SendAppointmentRescheduled(context.Context, AppointmentNotice) error    { return nil }
func (Noop) SendAppointmentCancellation(context.Context, AppointmentNotice) error   { return nil }

var (
	_ Notifier = (*Service)(nil)
	_ Notifier = Noop{}
)
