package reservations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var filterNow = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

func reservation(tableID string, startTime time.Time, customer string, seats int) *domain.Reservation {
	return &domain.Reservation{
		TableID:      tableID,
		StartTime:    startTime,
		CustomerName: customer,
		Username:     "user",
		Seats:        seats,
		Active:       startTime.After(filterNow),
	}
}

func TestMatchesFilter_Search(t *testing.T) {
	res := reservation("Table7", filterNow.Add(time.Hour), "Alice Johnson", 4)

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{name: "empty matches", search: "", want: true},
		{name: "customer substring", search: "john", want: true},
		{name: "customer case-insensitive", search: "ALICE", want: true},
		{name: "display name with space", search: "table 7", want: true},
		{name: "raw id without space", search: "table7", want: true},
		{name: "no match", search: "bob", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesFilter(res, domain.ReservationFilter{Search: tt.search}, filterNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesFilter_Status(t *testing.T) {
	upcoming := reservation("Table1", filterNow.Add(time.Hour), "Alice", 4)
	completed := reservation("Table2", filterNow.Add(-time.Hour), "Bob", 4)

	assert.True(t, matchesFilter(upcoming, domain.ReservationFilter{Status: domain.StatusFilterUpcoming}, filterNow))
	assert.False(t, matchesFilter(completed, domain.ReservationFilter{Status: domain.StatusFilterUpcoming}, filterNow))

	assert.True(t, matchesFilter(completed, domain.ReservationFilter{Status: domain.StatusFilterCompleted}, filterNow))
	assert.False(t, matchesFilter(upcoming, domain.ReservationFilter{Status: domain.StatusFilterCompleted}, filterNow))

	// Бронь ровно на now уже не Upcoming
	boundary := reservation("Table3", filterNow, "Carol", 4)
	assert.True(t, matchesFilter(boundary, domain.ReservationFilter{Status: domain.StatusFilterCompleted}, filterNow))
}

func TestMatchesFilter_DateRange(t *testing.T) {
	tests := []struct {
		name      string
		startTime time.Time
		dateRange domain.DateRangeFilter
		want      bool
	}{
		{name: "today matches", startTime: filterNow.Add(5 * time.Hour), dateRange: domain.DateRangeToday, want: true},
		{name: "tomorrow is not today", startTime: filterNow.Add(24 * time.Hour), dateRange: domain.DateRangeToday, want: false},
		{name: "today is in week", startTime: filterNow, dateRange: domain.DateRangeThisWeek, want: true},
		{name: "seventh day inclusive", startTime: filterNow.AddDate(0, 0, 7), dateRange: domain.DateRangeThisWeek, want: true},
		{name: "eighth day excluded", startTime: filterNow.AddDate(0, 0, 8), dateRange: domain.DateRangeThisWeek, want: false},
		{name: "yesterday excluded from week", startTime: filterNow.AddDate(0, 0, -1), dateRange: domain.DateRangeThisWeek, want: false},
		{name: "same month", startTime: time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC), dateRange: domain.DateRangeThisMonth, want: true},
		{name: "next month excluded", startTime: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC), dateRange: domain.DateRangeThisMonth, want: false},
		{name: "all matches everything", startTime: filterNow.AddDate(1, 0, 0), dateRange: domain.DateRangeAll, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := reservation("Table1", tt.startTime, "Alice", 4)
			got := matchesFilter(res, domain.ReservationFilter{DateRange: tt.dateRange}, filterNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesFilter_TableType(t *testing.T) {
	standard := reservation("Table1", filterNow.Add(time.Hour), "Alice", 4)
	vip := reservation("Table13", filterNow.Add(time.Hour), "Bob", 8)

	assert.True(t, matchesFilter(standard, domain.ReservationFilter{TableType: domain.TableTypeStandard}, filterNow))
	assert.False(t, matchesFilter(vip, domain.ReservationFilter{TableType: domain.TableTypeStandard}, filterNow))

	assert.True(t, matchesFilter(vip, domain.ReservationFilter{TableType: domain.TableTypeVIP}, filterNow))
	assert.False(t, matchesFilter(standard, domain.ReservationFilter{TableType: domain.TableTypeVIP}, filterNow))
}

func TestMatchesFilter_CriteriaCompose(t *testing.T) {
	// Все критерии объединяются через AND
	res := reservation("Table13", filterNow.Add(2*time.Hour), "Alice Johnson", 8)

	matching := domain.ReservationFilter{
		Search:    "alice",
		Status:    domain.StatusFilterUpcoming,
		DateRange: domain.DateRangeToday,
		TableType: domain.TableTypeVIP,
	}
	assert.True(t, matchesFilter(res, matching, filterNow))

	// Один непроходящий критерий отбрасывает бронь
	mismatched := matching
	mismatched.TableType = domain.TableTypeStandard
	assert.False(t, matchesFilter(res, mismatched, filterNow))
}

func TestSortReservations(t *testing.T) {
	a := reservation("Table1", filterNow.Add(3*time.Hour), "A", 4)
	b := reservation("Table2", filterNow.Add(time.Hour), "B", 4)
	c := reservation("Table3", filterNow.Add(2*time.Hour), "C", 4)

	asc := []*domain.Reservation{a, b, c}
	sortReservations(asc, true)
	assert.Equal(t, []*domain.Reservation{b, c, a}, asc)

	desc := []*domain.Reservation{a, b, c}
	sortReservations(desc, false)
	assert.Equal(t, []*domain.Reservation{a, c, b}, desc)
}
