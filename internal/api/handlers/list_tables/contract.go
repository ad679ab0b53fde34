package list_tables

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type TableRegistry interface {
	All() []domain.Table
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
