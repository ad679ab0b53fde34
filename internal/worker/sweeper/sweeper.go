package sweeper

import (
	"context"
	"time"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	MarkElapsed(ctx context.Context, now time.Time) (int64, error)
}

// SnapshotSyncer обновляет файловый снапшот после очистки
type SnapshotSyncer interface {
	SyncSnapshot(ctx context.Context) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper периодически помечает начавшиеся брони как завершенные.
// Записи не удаляются: они остаются в истории и продолжают учитываться
// в окне занятости для оценки времени ожидания.
type Sweeper struct {
	repo      ReservationRepository
	snapshots SnapshotSyncer
	timeProv  TimeProvider
	logger    Logger
	interval  time.Duration
	stopChan  chan struct{}
}

// New создает новый sweeper
func New(repo ReservationRepository, snapshots SnapshotSyncer, timeProv TimeProvider, logger Logger, interval time.Duration) *Sweeper {
	return &Sweeper{
		repo:      repo,
		snapshots: snapshots,
		timeProv:  timeProv,
		logger:    logger,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start запускает фоновую очистку
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("sweeper: starting, interval %s", s.interval)
	go s.run(ctx)
}

// Stop останавливает фоновую очистку
func (s *Sweeper) Stop() {
	s.logger.Info("sweeper: stopping")
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	// Первый проход сразу при старте
	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("sweeper: stopped")
			return
		case <-ctx.Done():
			s.logger.Info("sweeper: cancelled")
			return
		}
	}
}

// Sweep выполняет один проход: все брони с начавшимся временем
// помечаются завершенными одним запросом. Повторный вызов без
// новых завершившихся броней ничего не меняет.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.timeProv.Now()

	marked, err := s.repo.MarkElapsed(ctx, now)
	if err != nil {
		s.logger.Error("sweeper: mark elapsed reservations: %v", err)
		return
	}
	if marked == 0 {
		return
	}

	s.logger.Info("sweeper: marked %d reservations as elapsed", marked)

	if err := s.snapshots.SyncSnapshot(ctx); err != nil {
		s.logger.Warn("sweeper: snapshot sync failed: %v", err)
	}
}
