package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"gymslot/internal/apperr"
	"gymslot/internal/logger"
)

// WriteBehindStore acknowledges saves immediately and flushes the latest
// snapshot of each kind in the background. Consecutive saves of the same
// kind coalesce into one write. Loads see pending snapshots first.
type WriteBehindStore struct {
	next          Store
	retryInterval time.Duration

	mu      sync.Mutex
	pending map[string][]Record
	signal  chan struct{}
	running bool
	done    chan struct{}

	// flushMu keeps one flush in flight so Close never races Run.
	flushMu sync.Mutex
}

func NewWriteBehindStore(next Store, retryInterval time.Duration) *WriteBehindStore {
	if retryInterval <= 0 {
		retryInterval = time.Second
	}
	return &WriteBehindStore{
		next:          next,
		retryInterval: retryInterval,
		pending:       make(map[string][]Record),
		signal:        make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
}

func (s *WriteBehindStore) Load(ctx context.Context, kind string) ([]Record, error) {
	s.mu.Lock()
	snapshot, ok := s.pending[kind]
	s.mu.Unlock()
	if ok {
		return cloneRecords(snapshot)
	}
	return s.next.Load(ctx, kind)
}

func (s *WriteBehindStore) Save(ctx context.Context, kind string, records []Record) error {
	copied, err := cloneRecords(records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.pending[kind] = copied
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
	return nil
}

// Run flushes pending snapshots until ctx is done. Failed flushes are
// retried every retryInterval. Run must be called at most once.
func (s *WriteBehindStore) Run(ctx context.Context) {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()
	defer close(s.done)

	ticker := time.NewTicker(s.retryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.signal:
		case <-ticker.C:
			if s.Pending() == 0 {
				continue
			}
		}
		if err := s.Flush(ctx); err != nil {
			logger.Warn("write-behind flush failed", "error", err)
		}
	}
}

// Flush writes every pending snapshot. A snapshot that fails to write is
// kept unless a newer one arrived meanwhile.
func (s *WriteBehindStore) Flush(ctx context.Context) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	batch := s.pending
	s.pending = make(map[string][]Record)
	s.mu.Unlock()

	var errs []error
	for kind, records := range batch {
		if err := s.next.Save(ctx, kind, records); err != nil {
			errs = append(errs, err)
			s.mu.Lock()
			if _, newer := s.pending[kind]; !newer {
				s.pending[kind] = records
			}
			s.mu.Unlock()
		}
	}
	return errors.Join(errs...)
}

func (s *WriteBehindStore) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close waits for Run to return, then flushes whatever is still pending,
// including a snapshot whose background write was cut short.
func (s *WriteBehindStore) Close(ctx context.Context) error {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		select {
		case <-s.done:
		case <-ctx.Done():
			return apperr.Aborted("write-behind close", ctx.Err())
		}
	}
	return s.Flush(ctx)
}
