package domain

// StatusFilter narrows reservations by their position relative to now
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterUpcoming  StatusFilter = "upcoming"  // startTime > now
	StatusFilterCompleted StatusFilter = "completed" // startTime <= now
)

// DateRangeFilter narrows reservations by date relative to now
type DateRangeFilter string

const (
	DateRangeAll       DateRangeFilter = "all"
	DateRangeToday     DateRangeFilter = "today"
	DateRangeThisWeek  DateRangeFilter = "week"  // 0-7 days from now, inclusive
	DateRangeThisMonth DateRangeFilter = "month" // same calendar month and year as now
)

// TableTypeFilter narrows reservations by table type
type TableTypeFilter string

const (
	TableTypeAll      TableTypeFilter = "all"
	TableTypeStandard TableTypeFilter = "standard"
	TableTypeVIP      TableTypeFilter = "vip"
)

// ReservationFilter is the composed filter applied to reservation listings.
// All populated criteria compose with logical AND. Zero values mean "all".
type ReservationFilter struct {
	// Search is a case-insensitive substring matched against the table
	// display name and the customer name
	Search string

	Status    StatusFilter
	DateRange DateRangeFilter
	TableType TableTypeFilter

	// SortAscending orders results by StartTime ascending when true,
	// descending when false
	SortAscending bool
}

// Valid reports whether every populated enum carries a known value
func (f *ReservationFilter) Valid() bool {
	switch f.Status {
	case "", StatusFilterAll, StatusFilterUpcoming, StatusFilterCompleted:
	default:
		return false
	}
	switch f.DateRange {
	case "", DateRangeAll, DateRangeToday, DateRangeThisWeek, DateRangeThisMonth:
	default:
		return false
	}
	switch f.TableType {
	case "", TableTypeAll, TableTypeStandard, TableTypeVIP:
	default:
		return false
	}
	return true
}
