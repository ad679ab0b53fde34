package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// generateTimeSlots генерирует кандидаты-слоты на указанную дату
// Слоты идут от открытия до закрытия включительно с фиксированным шагом,
// по возрастанию. Для сегодняшней даты остаются только слоты строго позже
// now; для прошедших дат список пуст; для будущих дат возвращаются все.
//
// Генератор ничего не знает о занятости - он только перечисляет кандидатов,
// доступность накладывается отдельно (markAvailability)
func generateTimeSlots(hours BusinessHours, date, now time.Time) ([]time.Time, error) {
	if isDateInPast(date, now) {
		return []time.Time{}, nil
	}

	open, err := hours.OpenTime.At(date)
	if err != nil {
		return nil, err
	}
	close, err := hours.CloseTime.At(date)
	if err != nil {
		return nil, err
	}

	granularity := time.Duration(hours.GranularityMinutes) * time.Minute

	allSlots := make([]time.Time, 0)
	for slot := open; !slot.After(close); slot = slot.Add(granularity) {
		allSlots = append(allSlots, slot)
	}

	if !isSameDay(date, now) {
		return allSlots, nil
	}

	// Сегодня: слот на текущей минуте уже не бронируется
	available := make([]time.Time, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.After(now) {
			available = append(available, slot)
		}
	}

	return available, nil
}

// markAvailability накладывает занятость стола на кандидаты-слоты
// Слот занят, только если существует активная бронь с точно совпадающим
// временем начала (правило точного совпадения, без интервалов)
func markAvailability(slots []time.Time, reservations []*domain.Reservation) []Slot {
	taken := make(map[time.Time]bool, len(reservations))
	for _, res := range reservations {
		if res.Active {
			taken[res.StartTime.UTC()] = true
		}
	}

	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{
			StartTime: slot,
			Available: !taken[slot.UTC()],
		}
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
