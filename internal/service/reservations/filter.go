package reservations

import (
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// matchesFilter проверяет бронь против всех заданных критериев фильтра.
// Критерии объединяются через AND; пустые значения пропускают проверку.
func matchesFilter(res *domain.Reservation, filter domain.ReservationFilter, now time.Time) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		tableName := strings.ToLower(domain.TableDisplayName(res.TableID))
		rawID := strings.ToLower(res.TableID)
		customer := strings.ToLower(res.CustomerName)
		if !strings.Contains(tableName, needle) && !strings.Contains(rawID, needle) && !strings.Contains(customer, needle) {
			return false
		}
	}

	switch filter.Status {
	case domain.StatusFilterUpcoming:
		if !res.IsUpcoming(now) {
			return false
		}
	case domain.StatusFilterCompleted:
		if res.IsUpcoming(now) {
			return false
		}
	}

	if !matchesDateRange(res.StartTime, filter.DateRange, now) {
		return false
	}

	switch filter.TableType {
	case domain.TableTypeStandard:
		if res.IsVIP() {
			return false
		}
	case domain.TableTypeVIP:
		if !res.IsVIP() {
			return false
		}
	}

	return true
}

func matchesDateRange(startTime time.Time, dateRange domain.DateRangeFilter, now time.Time) bool {
	switch dateRange {
	case domain.DateRangeToday:
		return sameDate(startTime, now)
	case domain.DateRangeThisWeek:
		// Ближайшая неделя: от сегодняшней даты до +7 дней включительно.
		diff := daysBetween(now, startTime)
		return diff >= 0 && diff <= 7
	case domain.DateRangeThisMonth:
		return startTime.Year() == now.Year() && startTime.Month() == now.Month()
	default:
		return true
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// daysBetween считает разницу в календарных днях от from до to
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	fromDay := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	toDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// sortReservations упорядочивает список по времени начала
func sortReservations(list []*domain.Reservation, ascending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		if ascending {
			return list[i].StartTime.Before(list[j].StartTime)
		}
		return list[i].StartTime.After(list[j].StartTime)
	})
}
