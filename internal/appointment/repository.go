package appointment

import (
	"time"

	"gymslot/internal/store"
)

func NewRepository(s store.Store, lockTimeout time.Duration) Repository {
	return store.NewCollection(s, Codec, lockTimeout)
}
