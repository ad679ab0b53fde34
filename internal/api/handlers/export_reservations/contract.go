package export_reservations

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type ReservationService interface {
	ExportCSV(ctx context.Context, username string, role domain.Role, filter domain.ReservationFilter) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
