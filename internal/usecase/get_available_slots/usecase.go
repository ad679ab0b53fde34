package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/tables"
)

// UseCase use case получения слотов для бронирования стола
type UseCase struct {
	reservationRepo ReservationRepository
	registry        TableRegistry
	hours           BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	registry TableRegistry,
	hours BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		registry:        registry,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: table=%s, date=%s",
		req.TableID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Стол должен существовать в каталоге
	if _, err := uc.registry.Get(req.TableID); err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			uc.logger.Warn("GetAvailableSlots: table %s not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get table %s: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	// 3. Генерируем кандидаты-слоты на дату
	now := uc.timeProvider.Now()
	timeSlots, err := generateTimeSlots(uc.hours, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 4. Накладываем занятость стола
	reservations, err := uc.reservationRepo.GetByTable(ctx, req.TableID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	slots := markAvailability(timeSlots, reservations)

	uc.logger.Info("GetAvailableSlots: generated %d slots for table=%s, date=%s",
		len(slots), req.TableID, req.Date.Format(domain.DateFormat))

	return &Response{
		TableID: req.TableID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
