package book_table

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден в каталоге
	ErrTableNotFound = errors.New("book_table: table not found")

	// ErrSlotTaken возвращается, когда на пару (стол, время) уже есть активная бронь
	ErrSlotTaken = errors.New("book_table: slot is already taken")

	// ErrPastTime возвращается при попытке забронировать время в прошлом
	ErrPastTime = errors.New("book_table: reservation time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_table: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_table: internal error")
)
