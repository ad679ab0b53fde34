package book_table

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/infra/tables"
)

// UseCase use case бронирования стола
// Проверка доступности и вставка выполняются в одной SERIALIZABLE
// транзакции: конфликтная пара (стол, время) не может проскочить
// между проверкой и коммитом
type UseCase struct {
	reservationRepo ReservationRepository
	registry        TableRegistry
	txManager       TransactionManager
	snapshots       SnapshotSyncer
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	registry TableRegistry,
	txManager TransactionManager,
	snapshots SnapshotSyncer,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		registry:        registry,
		txManager:       txManager,
		snapshots:       snapshots,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет бронирование стола
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookTable: table=%s, time=%s, customer=%s, user=%s",
		req.TableID, req.StartTime.Format(time.RFC3339), req.CustomerName, req.Username)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookTable: validation failed: %v", err)
		return nil, err
	}

	// 2. Время брони должно быть в будущем
	now := uc.timeProvider.Now()
	if err := validateNotPast(req.StartTime, now); err != nil {
		uc.logger.Warn("BookTable: past time rejected: table=%s, time=%s",
			req.TableID, req.StartTime.Format(time.RFC3339))
		return nil, err
	}

	// 3. Стол должен существовать в каталоге
	table, err := uc.registry.Get(req.TableID)
	if err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			uc.logger.Warn("BookTable: table %s not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("BookTable: failed to get table %s: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	var created *domain.Reservation

	// 4. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Повторная проверка точного совпадения (стол, время) перед коммитом
		taken, err := uc.reservationRepo.ExistsActive(txCtx, req.TableID, req.StartTime)
		if err != nil {
			uc.logger.Error("BookTable: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("BookTable: slot taken: table=%s, time=%s",
				req.TableID, req.StartTime.Format(time.RFC3339))
			return ErrSlotTaken
		}

		// 4.2. Сохраняем бронь с денормализованной вместимостью стола
		res := &domain.Reservation{
			TableID:      req.TableID,
			StartTime:    req.StartTime,
			CustomerName: req.CustomerName,
			Username:     req.Username,
			Seats:        table.Seats,
			Active:       true,
		}

		created, err = uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				// Уникальный индекс сработал раньше нашей проверки
				return ErrSlotTaken
			}
			uc.logger.Error("BookTable: failed to create reservation: %v", err)
			return fmt.Errorf("%w: create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookTable: reserved table=%s at %s for %s",
		created.TableID, created.StartTime.Format(time.RFC3339), created.Username)

	// 5. Обновляем файловый снапшот (best-effort, бронь уже durable в БД)
	if err := uc.snapshots.SyncSnapshot(ctx); err != nil {
		uc.logger.Warn("BookTable: snapshot sync failed: %v", err)
	}

	return &Response{
		TableID:      created.TableID,
		StartTime:    created.StartTime,
		CustomerName: created.CustomerName,
		Username:     created.Username,
		Seats:        created.Seats,
		IsVIP:        created.IsVIP(),
		CreatedAt:    created.CreatedAt,
	}, nil
}
