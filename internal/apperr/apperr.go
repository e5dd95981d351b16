package apperr

import (
	"context"
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindEligibility
	KindDuplicate
	KindCapacityExceeded
	KindDoubleBooking
	KindOperationAborted
	KindStorage
)

var kindNames = map[Kind]string{
	KindUnknown:          "unknown",
	KindValidation:       "validation",
	KindNotFound:         "not_found",
	KindEligibility:      "eligibility",
	KindDuplicate:        "duplicate",
	KindCapacityExceeded: "capacity_exceeded",
	KindDoubleBooking:    "double_booking",
	KindOperationAborted: "operation_aborted",
	KindStorage:          "storage",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Sentinels for errors.Is matching against a kind.
var (
	ErrValidation       = &Error{Kind: KindValidation, Msg: "validation failed"}
	ErrNotFound         = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrEligibility      = &Error{Kind: KindEligibility, Msg: "not eligible"}
	ErrDuplicate        = &Error{Kind: KindDuplicate, Msg: "already registered"}
	ErrCapacityExceeded = &Error{Kind: KindCapacityExceeded, Msg: "slot is full"}
	ErrDoubleBooking    = &Error{Kind: KindDoubleBooking, Msg: "staff member already booked"}
	ErrOperationAborted = &Error{Kind: KindOperationAborted, Msg: "operation aborted"}
	ErrStorage          = &Error{Kind: KindStorage, Msg: "storage failure"}
)

// Error is a classified business or storage failure.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match when target is a sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

func newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func Validation(op, format string, args ...any) error {
	return newf(KindValidation, op, format, args...)
}

func NotFound(op, format string, args ...any) error {
	return newf(KindNotFound, op, format, args...)
}

func Eligibility(op, format string, args ...any) error {
	return newf(KindEligibility, op, format, args...)
}

func Duplicate(op, format string, args ...any) error {
	return newf(KindDuplicate, op, format, args...)
}

func CapacityExceeded(op, format string, args ...any) error {
	return newf(KindCapacityExceeded, op, format, args...)
}

func DoubleBooking(op, format string, args ...any) error {
	return newf(KindDoubleBooking, op, format, args...)
}

func Aborted(op string, err error) error {
	return &Error{Kind: KindOperationAborted, Op: op, Msg: "operation aborted", Err: err}
}

func Storage(op string, err error) error {
	return &Error{Kind: KindStorage, Op: op, Msg: "storage failure", Err: err}
}

// KindOf returns the kind of the first classified error in err's chain.
// Context cancellation and deadline errors classify as OperationAborted.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindOperationAborted
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
