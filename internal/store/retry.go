package store

import (
	"context"
	"errors"
	"time"

	"gymslot/internal/apperr"
	"gymslot/internal/logger"
	"gymslot/internal/metrics"
)

// RetryingStore retries failed loads and saves with exponential backoff and
// reports exhausted attempts as storage errors. Context cancellation is not
// retried and surfaces as an aborted operation.
type RetryingStore struct {
	next     Store
	attempts int
	backoff  time.Duration
}

func NewRetryingStore(next Store, attempts int, backoff time.Duration) *RetryingStore {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryingStore{next: next, attempts: attempts, backoff: backoff}
}

func (s *RetryingStore) Load(ctx context.Context, kind string) ([]Record, error) {
	var records []Record
	err := s.do(ctx, kind, "load", func() error {
		var err error
		records, err = s.next.Load(ctx, kind)
		return err
	})
	return records, err
}

func (s *RetryingStore) Save(ctx context.Context, kind string, records []Record) error {
	return s.do(ctx, kind, "save", func() error {
		return s.next.Save(ctx, kind, records)
	})
}

func (s *RetryingStore) do(ctx context.Context, kind, op string, fn func() error) error {
	var err error
	wait := s.backoff
	for attempt := 1; attempt <= s.attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if isContextErr(err) || ctx.Err() != nil {
			return apperr.Aborted(op+" "+kind, err)
		}
		if attempt == s.attempts {
			break
		}

		metrics.RecordStoreRetry(kind, op)
		logger.Warn("entity store operation failed, retrying",
			"kind", kind, "operation", op, "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return apperr.Aborted(op+" "+kind, ctx.Err())
		case <-time.After(wait):
		}
		wait *= 2
	}
	return apperr.Storage(op+" "+kind, err)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
