package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-ReservationService/internal/infra/tables"
)

type fakeRepo struct {
	reservations []*domain.Reservation
}

func (r *fakeRepo) find(tableID string, startTime time.Time) *domain.Reservation {
	for _, res := range r.reservations {
		if res.TableID == tableID && res.StartTime.Equal(startTime) {
			return res
		}
	}
	return nil
}

func (r *fakeRepo) ExistsActive(_ context.Context, tableID string, startTime time.Time) (bool, error) {
	res := r.find(tableID, startTime)
	return res != nil && res.Active, nil
}

func (r *fakeRepo) GetByKey(_ context.Context, tableID string, startTime time.Time) (*domain.Reservation, error) {
	if res := r.find(tableID, startTime); res != nil {
		return res, nil
	}
	return nil, storage.ErrReservationNotFound
}

func (r *fakeRepo) Delete(_ context.Context, tableID string, startTime time.Time) error {
	for i, res := range r.reservations {
		if res.TableID == tableID && res.StartTime.Equal(startTime) {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return nil
		}
	}
	return storage.ErrReservationNotFound
}

func (r *fakeRepo) GetByUsername(_ context.Context, username string) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.Username == username {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

type fakeSnapshotStore struct {
	saved []snapshot.Snapshot
}

func (s *fakeSnapshotStore) Save(snap snapshot.Snapshot) error {
	s.saved = append(s.saved, snap)
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTime struct {
	now time.Time
}

func (t *fakeTime) Now() time.Time { return t.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var serviceNow = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, reservations ...*domain.Reservation) (*Service, *fakeRepo, *fakeSnapshotStore) {
	t.Helper()

	registry, err := tables.NewRegistry([]config.TableConfig{
		{ID: "Table1", Seats: 4},
		{ID: "Table2", Seats: 4},
		{ID: "Table13", Seats: 8},
	})
	require.NoError(t, err)

	repo := &fakeRepo{reservations: reservations}
	store := &fakeSnapshotStore{}

	svc := NewService(repo, registry, store, &fakeTxManager{}, &fakeTime{now: serviceNow}, nopLogger{}, time.Hour)
	return svc, repo, store
}

func TestCancel_OwnReservation(t *testing.T) {
	startTime := serviceNow.Add(2 * time.Hour)
	svc, repo, store := newTestService(t, &domain.Reservation{
		TableID: "Table1", StartTime: startTime, Username: "alice", CustomerName: "Alice", Seats: 4, Active: true,
	})

	err := svc.Cancel(context.Background(), "Table1", startTime, "alice", domain.RoleCustomer)
	require.NoError(t, err)
	assert.Empty(t, repo.reservations)
	assert.Len(t, store.saved, 1)
}

func TestCancel_ForeignReservationDenied(t *testing.T) {
	startTime := serviceNow.Add(2 * time.Hour)
	svc, repo, store := newTestService(t, &domain.Reservation{
		TableID: "Table1", StartTime: startTime, Username: "alice", CustomerName: "Alice", Seats: 4, Active: true,
	})

	err := svc.Cancel(context.Background(), "Table1", startTime, "bob", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, repo.reservations, 1)
	assert.Empty(t, store.saved)
}

func TestCancel_ManagerCancelsAny(t *testing.T) {
	startTime := serviceNow.Add(2 * time.Hour)
	svc, repo, _ := newTestService(t, &domain.Reservation{
		TableID: "Table1", StartTime: startTime, Username: "alice", CustomerName: "Alice", Seats: 4, Active: true,
	})

	err := svc.Cancel(context.Background(), "Table1", startTime, "manager", domain.RoleManager)
	require.NoError(t, err)
	assert.Empty(t, repo.reservations)
}

func TestCancel_MissingReservation(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Cancel(context.Background(), "Table1", serviceNow.Add(time.Hour), "alice", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_UnknownTable(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Cancel(context.Background(), "Table99", serviceNow.Add(time.Hour), "alice", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestList_CustomerSeesOnlyOwn(t *testing.T) {
	svc, _, _ := newTestService(t,
		&domain.Reservation{TableID: "Table1", StartTime: serviceNow.Add(time.Hour), Username: "alice", Seats: 4, Active: true},
		&domain.Reservation{TableID: "Table2", StartTime: serviceNow.Add(2 * time.Hour), Username: "bob", Seats: 4, Active: true},
	)

	list, err := svc.List(context.Background(), "alice", domain.RoleCustomer, domain.ReservationFilter{SortAscending: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].Username)
}

func TestList_ManagerSeesAll(t *testing.T) {
	svc, _, _ := newTestService(t,
		&domain.Reservation{TableID: "Table1", StartTime: serviceNow.Add(2 * time.Hour), Username: "alice", Seats: 4, Active: true},
		&domain.Reservation{TableID: "Table2", StartTime: serviceNow.Add(time.Hour), Username: "bob", Seats: 4, Active: true},
	)

	list, err := svc.List(context.Background(), "manager", domain.RoleManager, domain.ReservationFilter{SortAscending: true})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Сортировка по времени начала
	assert.Equal(t, "bob", list[0].Username)
	assert.Equal(t, "alice", list[1].Username)
}

func TestList_InvalidFilter(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.List(context.Background(), "alice", domain.RoleCustomer, domain.ReservationFilter{
		Status: domain.StatusFilter("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestIsAvailable(t *testing.T) {
	startTime := serviceNow.Add(2 * time.Hour)
	svc, _, _ := newTestService(t, &domain.Reservation{
		TableID: "Table1", StartTime: startTime, Username: "alice", Seats: 4, Active: true,
	})

	available, err := svc.IsAvailable(context.Background(), "Table1", startTime)
	require.NoError(t, err)
	assert.False(t, available)

	// Тот же стол, другое время - свободен
	available, err = svc.IsAvailable(context.Background(), "Table1", startTime.Add(30*time.Minute))
	require.NoError(t, err)
	assert.True(t, available)

	_, err = svc.IsAvailable(context.Background(), "Table99", startTime)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestStats(t *testing.T) {
	svc, _, _ := newTestService(t,
		// Сегодня: VIP и Standard
		&domain.Reservation{TableID: "Table13", StartTime: serviceNow.Add(3 * time.Hour), Username: "alice", Seats: 8, Active: true},
		&domain.Reservation{TableID: "Table1", StartTime: serviceNow.Add(time.Hour), Username: "bob", Seats: 4, Active: true},
		// Сегодня, но уже истекла - в выручке учитывается, в активных нет
		&domain.Reservation{TableID: "Table2", StartTime: serviceNow.Add(-2 * time.Hour), Username: "carol", Seats: 4, Active: false},
		// Завтра - в активных учитывается, в выручке дня нет
		&domain.Reservation{TableID: "Table1", StartTime: serviceNow.Add(24 * time.Hour), Username: "dave", Seats: 4, Active: true},
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalTables)
	assert.Equal(t, 3, stats.ActiveReservations)
	assert.Equal(t, 200+100+100, stats.DailyRevenue)
	assert.Equal(t, 1, stats.VIPReservationsToday)
}

func TestSyncSnapshot(t *testing.T) {
	svc, _, store := newTestService(t,
		&domain.Reservation{TableID: "Table1", StartTime: serviceNow.Add(time.Hour), Username: "alice", CustomerName: "Alice", Seats: 4, Active: true},
		&domain.Reservation{TableID: "Table1", StartTime: serviceNow.Add(2 * time.Hour), Username: "bob", CustomerName: "Bob", Seats: 4, Active: true},
		// Истекшие брони в снапшот не попадают
		&domain.Reservation{TableID: "Table2", StartTime: serviceNow.Add(-2 * time.Hour), Username: "carol", CustomerName: "Carol", Seats: 4, Active: false},
	)

	err := svc.SyncSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	snap := store.saved[0]
	require.Len(t, snap, 3)

	table1 := snap["Table1"]
	assert.True(t, table1.IsReserved)
	assert.Equal(t, "Alice", table1.CustomerName)
	require.NotNil(t, table1.ReservationTime)
	assert.True(t, table1.ReservationTime.Equal(serviceNow.Add(time.Hour)))
	assert.Len(t, table1.ReservedTimes, 2)

	table2 := snap["Table2"]
	assert.False(t, table2.IsReserved)
	assert.Empty(t, table2.ReservedTimes)
}
