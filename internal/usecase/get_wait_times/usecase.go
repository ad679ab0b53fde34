package get_wait_times

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case оценки времени ожидания для walk-in гостей
type UseCase struct {
	reservationRepo ReservationRepository
	cfg             EstimatorConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, cfg EstimatorConfig, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		cfg:             cfg,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute вычисляет текущий отчет по временам ожидания
func (uc *UseCase) Execute(ctx context.Context) (*domain.WaitTimeReport, error) {
	reservations, err := uc.reservationRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetWaitTimes: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	report := estimate(now, reservations, uc.cfg)

	uc.logger.Info("GetWaitTimes: occupied=%d/%d, smallWait=%dm, bigWait=%dm",
		report.OccupiedTables, report.TotalTables,
		report.SmallPartyWaitMinutes, report.BigPartyWaitMinutes)

	return &report, nil
}
