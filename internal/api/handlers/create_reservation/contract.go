package create_reservation

import (
	"context"

	bookTable "github.com/m04kA/SMC-ReservationService/internal/usecase/book_table"
)

type BookTableUseCase interface {
	Execute(ctx context.Context, req *bookTable.Request) (*bookTable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
