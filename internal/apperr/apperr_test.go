package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsMatchesSentinelOfSameKind(t *testing.T) {
	err := CapacityExceeded("register", "slot %s is full", "monday 09:00-10:00")

	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.False(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, "register: slot monday 09:00-10:00 is full", err.Error())
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("cancel", "appointment %s not found", "a1"))

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestKindOfContextErrors(t *testing.T) {
	assert.Equal(t, KindOperationAborted, KindOf(context.DeadlineExceeded))
	assert.Equal(t, KindOperationAborted, KindOf(fmt.Errorf("wrap: %w", context.Canceled)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestStorageUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage("save classes", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrStorage))
	assert.Equal(t, "save classes: storage failure: connection reset", err.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "double_booking", KindDoubleBooking.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
