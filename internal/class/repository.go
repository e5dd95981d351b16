package class

import (
	"context"
	"time"

	"gymslot/internal/apperr"
	"gymslot/internal/store"
)

type repository struct {
	*store.Collection[Class]
}

func NewRepository(s store.Store, lockTimeout time.Duration) Repository {
	return &repository{Collection: store.NewCollection(s, Codec, lockTimeout)}
}

// Get returns a private copy of the class.
func (r *repository) Get(ctx context.Context, id string) (*Class, error) {
	var out *Class
	err := r.Read(ctx, func(v store.View[Class]) error {
		c, ok := v.Peek(id)
		if !ok {
			return apperr.NotFound("class.Get", "class %q not found", id)
		}
		out = c.Clone()
		return nil
	})
	return out, err
}

func (r *repository) List(ctx context.Context) ([]*Class, error) {
	var out []*Class
	err := r.Read(ctx, func(v store.View[Class]) error {
		out = make([]*Class, 0, v.Len())
		v.Each(func(c *Class) bool {
			out = append(out, c.Clone())
			return true
		})
		return nil
	})
	return out, err
}
