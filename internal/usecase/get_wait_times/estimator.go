package get_wait_times

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// EstimatorConfig параметры эвристики времени ожидания
type EstimatorConfig struct {
	OccupancyWindow time.Duration // Окно занятости стола после начала брони
	SmallTableCount int           // Всего маленьких столов (4 места)
	BigTableCount   int           // Всего больших столов (8 мест)
	TotalTables     int
}

// estimate вычисляет отчет по временам ожидания для walk-in гостей
// Чистая функция от now и текущего набора броней
//
// Стол занят, если у него есть бронь в окне занятости:
// start <= now < start + window. Флаг Active здесь не учитывается -
// sweeper как раз помечает начавшиеся брони истекшими, но стол они
// продолжают занимать до конца окна
func estimate(now time.Time, reservations []*domain.Reservation, cfg EstimatorConfig) domain.WaitTimeReport {
	occupied := make(map[string]int) // tableID -> seats

	for _, res := range reservations {
		if res.OccupiesAt(now, cfg.OccupancyWindow) {
			occupied[res.TableID] = res.Seats
		}
	}

	small, big := 0, 0
	for _, seats := range occupied {
		switch seats {
		case domain.SmallTableSeats:
			small++
		case domain.BigTableSeats:
			big++
		}
	}

	return domain.WaitTimeReport{
		TotalTables:           cfg.TotalTables,
		OccupiedTables:        small + big,
		SmallPartyWaitMinutes: smallPartyWait(small, cfg.SmallTableCount),
		BigPartyWaitMinutes:   bigPartyWait(big, cfg.BigTableCount),
	}
}

// smallPartyWait время ожидания для компаний до 4 гостей
// Эвристика упрощена, в реальности опиралась бы на исторические паттерны:
// чем больше занято столов, тем дольше ожидание
func smallPartyWait(occupied, capacity int) int {
	switch {
	case occupied == capacity:
		return domain.MaxWaitMinutes
	case occupied < capacity:
		wait := domain.MaxWaitMinutes / (capacity - occupied)
		if wait < domain.MinWaitMinutes {
			wait = domain.MinWaitMinutes
		}
		return roundUpToMultiple(wait, domain.WaitRoundingMinutes)
	default:
		// Не должно случаться: занятых столов больше, чем в каталоге
		return 0
	}
}

// bigPartyWait время ожидания для компаний больше 4 гостей
func bigPartyWait(occupied, capacity int) int {
	switch {
	case occupied >= capacity:
		return domain.BigTableWaitAllBusy
	case occupied == capacity-1:
		return domain.BigTableWaitOneBusy
	default:
		return 0
	}
}

// roundUpToMultiple округляет minutes вверх до ближайшего кратного multiple
func roundUpToMultiple(minutes, multiple int) int {
	return multiple * ((minutes + multiple - 1) / multiple)
}
