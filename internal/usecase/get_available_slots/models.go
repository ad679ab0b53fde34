package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// BusinessHours рабочие часы ресторана и шаг генерации слотов
type BusinessHours struct {
	OpenTime           types.TimeString // Время открытия, например "11:00"
	CloseTime          types.TimeString // Время закрытия, например "22:00"
	GranularityMinutes int              // Шаг слотов в минутах
}

// Request модель запроса на получение слотов
type Request struct {
	TableID string    // ID стола
	Date    time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	TableID string
	Date    time.Time
	Slots   []Slot
}

// Slot один кандидат-слот с признаком доступности для запрошенного стола
type Slot struct {
	StartTime time.Time
	Available bool
}
