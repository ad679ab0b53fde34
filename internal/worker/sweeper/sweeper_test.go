package sweeper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type fakeRepo struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	calls        int
}

func (r *fakeRepo) MarkElapsed(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	var marked int64
	for _, res := range r.reservations {
		if res.Active && !res.StartTime.After(now) {
			res.Active = false
			marked++
		}
	}
	return marked, nil
}

func (r *fakeRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type fakeSyncer struct {
	calls int
}

func (s *fakeSyncer) SyncSnapshot(_ context.Context) error {
	s.calls++
	return nil
}

type fakeTime struct {
	now time.Time
}

func (t *fakeTime) Now() time.Time { return t.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSweep_MarksElapsedReservations(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	repo := &fakeRepo{reservations: []*domain.Reservation{
		{TableID: "Table1", StartTime: now.Add(-time.Hour), Active: true},
		{TableID: "Table2", StartTime: now, Active: true}, // Ровно now тоже истекла
		{TableID: "Table3", StartTime: now.Add(time.Minute), Active: true},
	}}
	syncer := &fakeSyncer{}

	s := New(repo, syncer, &fakeTime{now: now}, nopLogger{}, time.Minute)
	s.Sweep(context.Background())

	assert.False(t, repo.reservations[0].Active)
	assert.False(t, repo.reservations[1].Active)
	assert.True(t, repo.reservations[2].Active)
	assert.Equal(t, 1, syncer.calls)

	// Записи помечаются, но не удаляются
	assert.Len(t, repo.reservations, 3)
}

func TestSweep_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	repo := &fakeRepo{reservations: []*domain.Reservation{
		{TableID: "Table1", StartTime: now.Add(-time.Hour), Active: true},
	}}
	syncer := &fakeSyncer{}

	s := New(repo, syncer, &fakeTime{now: now}, nopLogger{}, time.Minute)
	s.Sweep(context.Background())
	s.Sweep(context.Background())

	assert.Equal(t, 2, repo.callCount())
	// Второй проход ничего не пометил, снапшот не перезаписывается
	assert.Equal(t, 1, syncer.calls)
}

func TestSweep_NothingToMark(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	repo := &fakeRepo{reservations: []*domain.Reservation{
		{TableID: "Table1", StartTime: now.Add(time.Hour), Active: true},
	}}
	syncer := &fakeSyncer{}

	s := New(repo, syncer, &fakeTime{now: now}, nopLogger{}, time.Minute)
	s.Sweep(context.Background())

	assert.True(t, repo.reservations[0].Active)
	assert.Equal(t, 0, syncer.calls)
}

func TestStartStop(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	repo := &fakeRepo{}
	syncer := &fakeSyncer{}

	s := New(repo, syncer, &fakeTime{now: now}, nopLogger{}, time.Hour)
	s.Start(context.Background())

	// Первый проход выполняется сразу при старте
	assert.Eventually(t, func() bool {
		return repo.callCount() >= 1
	}, time.Second, 10*time.Millisecond)

	s.Stop()
}
