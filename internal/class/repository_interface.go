package class

import (
	"context"

	"gymslot/internal/store"
)

// Repository is the authoritative class index. Read and Write run their
// callbacks inside the index critical section.
type Repository interface {
	Load(ctx context.Context) error
	Get(ctx context.Context, id string) (*Class, error)
	List(ctx context.Context) ([]*Class, error)
	Read(ctx context.Context, fn func(store.View[Class]) error) error
	Write(ctx context.Context, fn func(*store.Tx[Class]) error) error
}
