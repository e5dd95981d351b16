package directory

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymslot/internal/apperr"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Person), args.Error(1)
}

func (m *MockRepository) FindByName(ctx context.Context, name string) (*Person, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Person), args.Error(1)
}

func (m *MockRepository) ListMembersByGym(ctx context.Context, gymID string) ([]Person, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Person), args.Error(1)
}

func (m *MockRepository) GetGym(ctx context.Context, id string) (*Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepository) Import(ctx context.Context, seed *Seed) error {
	return m.Called(ctx, seed).Error(0)
}

func TestService_FindByIDIsCached(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByID", mock.Anything, "m1").
		Return(&Person{ID: "m1", Name: "Alex", Role: RoleMember}, nil).Once()

	svc := NewService(repo, time.Minute)
	for i := 0; i < 3; i++ {
		p, err := svc.FindByID(context.Background(), "m1")
		require.NoError(t, err)
		assert.Equal(t, "Alex", p.Name)
	}
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestService_CachedValuesAreCopies(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetGym", mock.Anything, "g1").Return(&Gym{ID: "g1", Name: "Downtown"}, nil).Once()

	svc := NewService(repo, time.Minute)
	g, err := svc.GetGym(context.Background(), "g1")
	require.NoError(t, err)
	g.Name = "changed"

	again, err := svc.GetGym(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "Downtown", again.Name)
}

func TestService_ZeroTTLDisablesCache(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetGym", mock.Anything, "g1").Return(&Gym{ID: "g1"}, nil).Twice()

	svc := NewService(repo, 0)
	_, _ = svc.GetGym(context.Background(), "g1")
	_, _ = svc.GetGym(context.Background(), "g1")
	repo.AssertExpectations(t)
}

func TestService_MissingRowsAreNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)
	repo.On("FindByName", mock.Anything, "Nobody").Return(nil, sql.ErrNoRows)

	svc := NewService(repo, time.Minute)

	_, err := svc.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.FindByName(context.Background(), "Nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_DatabaseFailuresAreStorageErrors(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListMembersByGym", mock.Anything, "g1").Return(nil, errors.New("connection reset"))

	svc := NewService(repo, time.Minute)
	_, err := svc.ListMembersByGym(context.Background(), "g1")
	assert.ErrorIs(t, err, apperr.ErrStorage)
}
