package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type ReservationService interface {
	List(ctx context.Context, username string, role domain.Role, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
