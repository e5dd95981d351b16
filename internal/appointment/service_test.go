package appointment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymslot/internal/apperr"
	"gymslot/internal/directory"
	"gymslot/internal/email"
	"gymslot/internal/store"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendRegistrationConfirmation(ctx context.Context, n email.RegistrationNotice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotifier) SendRegistrationCancelled(ctx context.Context, n email.RegistrationNotice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotifier) SendAppointmentConfirmation(ctx context.Context, n email.AppointmentNotice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotifier) SendAppointmentRescheduled(ctx context.Context, n email.AppointmentNotice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotifier) SendAppointmentCancellation(ctx context.Context, n email.AppointmentNotice) error {
	return m.Called(ctx, n).Error(0)
}

type failingStore struct {
	store.Store
}

func (f *failingStore) Save(context.Context, string, []store.Record) error {
	return errors.New("disk full")
}

type fixture struct {
	mem *store.MemoryStore
	dir directory.Service
	svc Service
}

func newFixture(t *testing.T, notifier email.Notifier) *fixture {
	t.Helper()
	ctx := context.Background()

	repo := directory.NewMemoryRepository()
	require.NoError(t, repo.Import(ctx, &directory.Seed{
		Gyms: []directory.Gym{{ID: "G1", Name: "Downtown"}},
		People: []directory.Person{
			{ID: "S1", Name: "Dana", Role: directory.RoleTrainingStaff, GymID: "G1"},
			{ID: "S2", Name: "Nia", Role: directory.RoleWellbeingStaff, GymID: "G1", Activity: "Nutrition"},
			{ID: "A1", Name: "Root", Role: directory.RoleAdmin},
			{ID: "M1", Name: "Ana", Email: "ana@example.com", Role: directory.RoleMember, GymID: "G1"},
			{ID: "M2", Name: "Ben", Email: "ben@example.com", Role: directory.RoleMember, GymID: "G1"},
		},
	}))
	dir := directory.NewService(repo, 0)

	mem := store.NewMemoryStore()
	appts := NewRepository(mem, time.Second)
	require.NoError(t, appts.Load(ctx))

	return &fixture{mem: mem, dir: dir, svc: NewService(appts, dir, nil, notifier)}
}

func TestBook_DoubleBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	first, err := f.svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, int64(3000), first.CostCents)
	assert.Equal(t, StatusPending, first.Status)

	_, err = f.svc.Book(ctx, BookRequest{MemberID: "M2", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	assert.ErrorIs(t, err, apperr.ErrDoubleBooking)

	list, err := f.svc.List(ctx, Filter{StaffID: "S1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, f.mem.Saves(store.KindAppointments))
}

func TestBook_PricesByActivity(t *testing.T) {
	f := newFixture(t, nil)

	a, err := f.svc.Book(context.Background(), BookRequest{MemberID: "M1", StaffID: "S2", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, int64(4500), a.CostCents)
}

func TestBook_Rejections(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		name string
		req  BookRequest
		kind apperr.Kind
	}{
		{"unknown staff", BookRequest{MemberID: "M1", StaffID: "S9", Date: "2025-03-10", Time: "10:00"}, apperr.KindNotFound},
		{"not staff", BookRequest{MemberID: "M1", StaffID: "A1", Date: "2025-03-10", Time: "10:00"}, apperr.KindValidation},
		{"unknown member", BookRequest{MemberID: "M9", StaffID: "S1", Date: "2025-03-10", Time: "10:00"}, apperr.KindNotFound},
		{"bad date", BookRequest{MemberID: "M1", StaffID: "S1", Date: "10/03/2025", Time: "10:00"}, apperr.KindValidation},
		{"bad time", BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "25:00"}, apperr.KindValidation},
		{"bad status", BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00", Status: "refunded"}, apperr.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Book(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
		})
	}
	assert.Equal(t, 0, f.mem.Saves(store.KindAppointments))
}

func TestReschedule_FreesPreviousSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	first, err := f.svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)

	moved, err := f.svc.Reschedule(ctx, first.ID, "2025-03-10", "11:00")
	require.NoError(t, err)
	assert.Equal(t, "11:00", moved.Time.String())
	assert.Equal(t, first.ID, moved.ID)

	_, err = f.svc.Book(ctx, BookRequest{MemberID: "M2", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)
}

func TestReschedule_Conflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	a, err := f.svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)
	_, err = f.svc.Book(ctx, BookRequest{MemberID: "M2", StaffID: "S1", Date: "2025-03-10", Time: "11:00"})
	require.NoError(t, err)

	_, err = f.svc.Reschedule(ctx, a.ID, "2025-03-10", "11:00")
	assert.ErrorIs(t, err, apperr.ErrDoubleBooking)

	same, err := f.svc.Reschedule(ctx, a.ID, "2025-03-10", "10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", same.Time.String())

	_, err = f.svc.Reschedule(ctx, "missing", "2025-03-10", "12:00")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	a, err := f.svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, a.ID))
	assert.ErrorIs(t, f.svc.Cancel(ctx, a.ID), apperr.ErrNotFound)

	_, err = f.svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	taken, err := f.svc.IsDoubleBooked(ctx, "S1", "2025-03-10", "10:00", "")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestIsDoubleBooked(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	a, err := f.svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)

	taken, err := f.svc.IsDoubleBooked(ctx, "S1", "2025-03-10", "10:00", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = f.svc.IsDoubleBooked(ctx, "S1", "2025-03-10", "10:00", a.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = f.svc.IsDoubleBooked(ctx, "S2", "2025-03-10", "10:00", "")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = f.svc.IsDoubleBooked(ctx, "S1", "tomorrow", "10:00", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	a, err := f.svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)

	paid, err := f.svc.SetStatus(ctx, a.ID, "PAID")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)

	_, err = f.svc.SetStatus(ctx, a.ID, "lost")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.SetStatus(ctx, "missing", "paid")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestList_FiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	for _, req := range []BookRequest{
		{MemberID: "M2", StaffID: "S1", Date: "2025-03-11", Time: "09:00"},
		{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "15:00"},
		{MemberID: "M1", StaffID: "S2", Date: "2025-03-10", Time: "08:30"},
	} {
		_, err := f.svc.Book(ctx, req)
		require.NoError(t, err)
	}

	all, err := f.svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "08:30", all[0].Time.String())
	assert.Equal(t, "15:00", all[1].Time.String())
	assert.Equal(t, "2025-03-11", all[2].Date.String())

	mine, err := f.svc.List(ctx, Filter{MemberID: "M1", Date: "2025-03-10"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	_, err = f.svc.List(ctx, Filter{Date: "soon"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestBook_ConcurrentSameSlot(t *testing.T) {
	f := newFixture(t, nil)

	var (
		wg      sync.WaitGroup
		booked  atomic.Int32
		doubled atomic.Int32
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			member := "M1"
			if i%2 == 1 {
				member = "M2"
			}
			_, err := f.svc.Book(context.Background(), BookRequest{MemberID: member, StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
			switch {
			case err == nil:
				booked.Add(1)
			case errors.Is(err, apperr.ErrDoubleBooking):
				doubled.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, booked.Load())
	assert.EqualValues(t, 9, doubled.Load())
}

func TestBook_FailedSaveLeavesIndexUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	broken := NewRepository(&failingStore{Store: f.mem}, time.Second)
	require.NoError(t, broken.Load(ctx))
	svc := NewService(broken, f.dir, nil, nil)

	_, err := svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	assert.ErrorIs(t, err, apperr.ErrStorage)

	taken, err := svc.IsDoubleBooked(ctx, "S1", "2025-03-10", "10:00", "")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestBook_CancelledContextAborts(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	assert.ErrorIs(t, err, apperr.ErrOperationAborted)
	assert.Equal(t, 0, f.mem.Saves(store.KindAppointments))
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockNotifier)
	notifier.On("SendAppointmentConfirmation", mock.Anything, email.AppointmentNotice{
		MemberName:  "Ana",
		MemberEmail: "ana@example.com",
		StaffName:   "Dana",
		Date:        "2025-03-10",
		Time:        "10:00",
		CostCents:   3000,
	}).Return(nil).Once()
	notifier.On("SendAppointmentRescheduled", mock.Anything, mock.MatchedBy(func(n email.AppointmentNotice) bool {
		return n.Previous == "2025-03-10 10:00" && n.Time == "11:00"
	})).Return(errors.New("redis down")).Once()
	notifier.On("SendAppointmentCancellation", mock.Anything, mock.AnythingOfType("email.AppointmentNotice")).
		Return(nil).Once()

	f := newFixture(t, notifier)

	a, err := f.svc.Book(ctx, BookRequest{MemberID: "M1", StaffID: "S1", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)
	_, err = f.svc.Reschedule(ctx, a.ID, "2025-03-10", "11:00")
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(ctx, a.ID))

	notifier.AssertExpectations(t)
}
