package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/semaphore"

	"gymslot/internal/apperr"
	"gymslot/internal/metrics"
)

// Codec tells a Collection how to identify, copy and (de)serialise T.
// Decode is the single place where legacy records are migrated.
type Codec[T any] struct {
	Kind   string
	ID     func(*T) string
	Clone  func(*T) *T
	Encode func(*T) (Record, error)
	Decode func(Record) (*T, error)
}

// Collection is the authoritative in-memory index of one aggregate kind.
// All reads and writes run under a single-slot semaphore whose acquisition
// is bounded by lockTimeout and the caller's context. Writes are applied to
// a working copy that replaces the index only after the store accepted the
// whole collection.
type Collection[T any] struct {
	store       Store
	codec       Codec[T]
	lockTimeout time.Duration
	sem         *semaphore.Weighted
	items       map[string]*T
}

func NewCollection[T any](s Store, codec Codec[T], lockTimeout time.Duration) *Collection[T] {
	return &Collection[T]{
		store:       s,
		codec:       codec,
		lockTimeout: lockTimeout,
		sem:         semaphore.NewWeighted(1),
		items:       make(map[string]*T),
	}
}

func (c *Collection[T]) Kind() string { return c.codec.Kind }

// Load replaces the index with the persisted collection.
func (c *Collection[T]) Load(ctx context.Context) error {
	release, err := c.acquire(ctx, "load "+c.codec.Kind)
	if err != nil {
		return err
	}
	defer release()

	records, err := c.store.Load(ctx, c.codec.Kind)
	if err != nil {
		return classify("load "+c.codec.Kind, err)
	}

	items := make(map[string]*T, len(records))
	for i, r := range records {
		v, err := c.codec.Decode(r)
		if err != nil {
			return apperr.Storage("load "+c.codec.Kind, fmt.Errorf("record %d: %w", i, err))
		}
		id := c.codec.ID(v)
		if _, dup := items[id]; dup {
			return apperr.Storage("load "+c.codec.Kind, fmt.Errorf("duplicate id %q", id))
		}
		items[id] = v
	}
	c.items = items
	return nil
}

// Read runs fn against a read-only view of the index.
func (c *Collection[T]) Read(ctx context.Context, fn func(View[T]) error) error {
	release, err := c.acquire(ctx, "read "+c.codec.Kind)
	if err != nil {
		return err
	}
	defer release()

	return fn(newTx(&c.codec, c.items))
}

// Write runs fn inside the critical section. If fn fails nothing changes;
// otherwise the whole collection is saved and then becomes authoritative.
func (c *Collection[T]) Write(ctx context.Context, fn func(*Tx[T]) error) error {
	op := "write " + c.codec.Kind
	release, err := c.acquire(ctx, op)
	if err != nil {
		return err
	}
	defer release()

	tx := newTx(&c.codec, c.items)
	if err := fn(tx); err != nil {
		return err
	}
	if !tx.dirty {
		return nil
	}

	records, err := tx.encode()
	if err != nil {
		return apperr.Storage(op, err)
	}
	if err := c.store.Save(ctx, c.codec.Kind, records); err != nil {
		metrics.RecordStoreWrite(c.codec.Kind, "error")
		return classify(op, err)
	}
	metrics.RecordStoreWrite(c.codec.Kind, "ok")

	c.items = tx.items
	return nil
}

func (c *Collection[T]) acquire(ctx context.Context, op string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.Aborted(op, err)
	}
	lockCtx, cancel := context.WithTimeout(ctx, c.lockTimeout)
	defer cancel()
	if err := c.sem.Acquire(lockCtx, 1); err != nil {
		return nil, apperr.Aborted(op, err)
	}
	return func() { c.sem.Release(1) }, nil
}

func classify(op string, err error) error {
	var classified *apperr.Error
	if errors.As(err, &classified) {
		return err
	}
	if isContextErr(err) {
		return apperr.Aborted(op, err)
	}
	return apperr.Storage(op, err)
}

// View is read-only access to a collection snapshot.
type View[T any] interface {
	Peek(id string) (*T, bool)
	Each(fn func(*T) bool)
	Len() int
}

// Tx is a copy-on-write working set of a collection. Values returned by Get
// are private copies that may be mutated; Peek and Each values must not be.
type Tx[T any] struct {
	codec   *Codec[T]
	items   map[string]*T
	private map[string]bool
	dirty   bool
}

func newTx[T any](codec *Codec[T], base map[string]*T) *Tx[T] {
	items := make(map[string]*T, len(base))
	for id, v := range base {
		items[id] = v
	}
	return &Tx[T]{codec: codec, items: items, private: make(map[string]bool)}
}

func (tx *Tx[T]) Peek(id string) (*T, bool) {
	v, ok := tx.items[id]
	return v, ok
}

// Get returns a mutable copy of the item and marks the transaction dirty.
func (tx *Tx[T]) Get(id string) (*T, bool) {
	v, ok := tx.items[id]
	if !ok {
		return nil, false
	}
	if !tx.private[id] {
		v = tx.codec.Clone(v)
		tx.items[id] = v
		tx.private[id] = true
	}
	tx.dirty = true
	return v, true
}

func (tx *Tx[T]) Put(v *T) {
	id := tx.codec.ID(v)
	tx.items[id] = v
	tx.private[id] = true
	tx.dirty = true
}

func (tx *Tx[T]) Delete(id string) bool {
	if _, ok := tx.items[id]; !ok {
		return false
	}
	delete(tx.items, id)
	delete(tx.private, id)
	tx.dirty = true
	return true
}

// Each visits items in id order until fn returns false.
func (tx *Tx[T]) Each(fn func(*T) bool) {
	for _, id := range tx.ids() {
		if !fn(tx.items[id]) {
			return
		}
	}
}

func (tx *Tx[T]) Len() int { return len(tx.items) }

func (tx *Tx[T]) ids() []string {
	ids := make([]string, 0, len(tx.items))
	for id := range tx.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (tx *Tx[T]) encode() ([]Record, error) {
	records := make([]Record, 0, len(tx.items))
	for _, id := range tx.ids() {
		r, err := tx.codec.Encode(tx.items[id])
		if err != nil {
			return nil, fmt.Errorf("encode %s %q: %w", tx.codec.Kind, id, err)
		}
		records = append(records, r)
	}
	return records, nil
}
