package book_table

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ExistsActive(ctx context.Context, tableID string, startTime time.Time) (bool, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// TableRegistry интерфейс каталога столов
type TableRegistry interface {
	Get(tableID string) (domain.Table, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SnapshotSyncer обновляет файловый снапшот состояния столов после мутаций
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
