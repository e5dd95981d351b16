package appointment

import (
	"context"

	"gymslot/internal/store"
)

type Repository interface {
	Load(ctx context.Context) error
	Read(ctx context.Context, fn func(store.View[Appointment]) error) error
	Write(ctx context.Context, fn func(*store.Tx[Appointment]) error) error
}
