package list_reservations

import (
	"net/url"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ParseFilterQuery собирает фильтр из query параметров.
// Пустые параметры означают "все"; сортировка по умолчанию по возрастанию.
func ParseFilterQuery(query url.Values) domain.ReservationFilter {
	return domain.ReservationFilter{
		Search:        query.Get("q"),
		Status:        domain.StatusFilter(query.Get("status")),
		DateRange:     domain.DateRangeFilter(query.Get("range")),
		TableType:     domain.TableTypeFilter(query.Get("type")),
		SortAscending: query.Get("sort") != "desc",
	}
}
