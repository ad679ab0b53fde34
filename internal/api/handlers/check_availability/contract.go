package check_availability

import (
	"context"
	"time"
)

type ReservationService interface {
	IsAvailable(ctx context.Context, tableID string, startTime time.Time) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
