package directory

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"

	"gymslot/internal/apperr"
)

// Service resolves people and gyms for the booking engines.
type Service interface {
	FindByID(ctx context.Context, id string) (*Person, error)
	FindByName(ctx context.Context, name string) (*Person, error)
	ListMembersByGym(ctx context.Context, gymID string) ([]Person, error)
	GetGym(ctx context.Context, id string) (*Gym, error)
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

// NewService wraps repo with a TTL cache for id lookups. A ttl of zero
// disables caching.
func NewService(repo Repository, ttl time.Duration) Service {
	s := &service{repo: repo}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

func (s *service) FindByID(ctx context.Context, id string) (*Person, error) {
	if p, ok := s.cached("person:" + id); ok {
		person := p.(Person)
		return &person, nil
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify("directory.FindByID", "person", id, err)
	}
	s.store("person:"+id, *p)
	return p, nil
}

func (s *service) FindByName(ctx context.Context, name string) (*Person, error) {
	p, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, classify("directory.FindByName", "person", name, err)
	}
	return p, nil
}

func (s *service) ListMembersByGym(ctx context.Context, gymID string) ([]Person, error) {
	people, err := s.repo.ListMembersByGym(ctx, gymID)
	if err != nil {
		return nil, classify("directory.ListMembersByGym", "gym", gymID, err)
	}
	return people, nil
}

func (s *service) GetGym(ctx context.Context, id string) (*Gym, error) {
	if g, ok := s.cached("gym:" + id); ok {
		gym := g.(Gym)
		return &gym, nil
	}

	g, err := s.repo.GetGym(ctx, id)
	if err != nil {
		return nil, classify("directory.GetGym", "gym", id, err)
	}
	s.store("gym:"+id, *g)
	return g, nil
}

func (s *service) cached(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *service) store(key string, v any) {
	if s.cache != nil {
		s.cache.SetDefault(key, v)
	}
}

func classify(op, what, key string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return apperr.NotFound(op, "%s %q not found", what, key)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperr.Aborted(op, err)
	default:
		return apperr.Storage(op, err)
	}
}
