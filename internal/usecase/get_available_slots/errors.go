package get_available_slots

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден в каталоге
	ErrTableNotFound = errors.New("get_available_slots: table not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
