package reservations

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден в каталоге
	ErrTableNotFound = errors.New("table not found")

	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidFilter возвращается при некорректном фильтре
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
