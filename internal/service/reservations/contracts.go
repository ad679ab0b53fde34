package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/snapshot"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ExistsActive(ctx context.Context, tableID string, startTime time.Time) (bool, error)
	GetByKey(ctx context.Context, tableID string, startTime time.Time) (*domain.Reservation, error)
	Delete(ctx context.Context, tableID string, startTime time.Time) error
	GetByUsername(ctx context.Context, username string) ([]*domain.Reservation, error)
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
}

// TableRegistry интерфейс каталога столов
type TableRegistry interface {
	Get(tableID string) (domain.Table, error)
	All() []domain.Table
	Count() int
}

// SnapshotStore файловый снапшот состояния столов
type SnapshotStore interface {
	Save(snap snapshot.Snapshot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
