package book_table

import "time"

// Request модель запроса на бронирование стола
type Request struct {
	TableID      string    // ID стола
	StartTime    time.Time // Абсолютное время начала брони
	CustomerName string    // Имя гостя
	Username     string    // Владелец брони (из внешнего identity-провайдера)
}

// Response модель ответа с созданной бронью
type Response struct {
	TableID      string
	StartTime    time.Time
	CustomerName string
	Username     string
	Seats        int
	IsVIP        bool
	CreatedAt    time.Time
}
