package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type ReservationService interface {
	Cancel(ctx context.Context, tableID string, startTime time.Time, username string, role domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
