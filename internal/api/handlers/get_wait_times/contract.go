package get_wait_times

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type GetWaitTimesUseCase interface {
	Execute(ctx context.Context) (*domain.WaitTimeReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
