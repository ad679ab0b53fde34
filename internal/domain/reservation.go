package domain

import "time"

// Reservation represents a seating slot booked on a table
// The (TableID, StartTime) pair is the uniqueness key: two reservations
// for the same table must never share an identical timestamp
type Reservation struct {
	TableID      string
	StartTime    time.Time
	CustomerName string
	Username     string // Owner of the reservation, used for access scoping

	// Denormalized table capacity, kept with the record for history/export
	Seats int

	// Active is false once the occupancy sweeper has retired the
	// reservation; elapsed records are kept for reporting
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVIP returns true if the reservation is on a VIP table
func (r *Reservation) IsVIP() bool {
	return r.Seats >= VIPSeatsThreshold
}

// IsUpcoming returns true if the reservation starts strictly after now
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.StartTime.After(now)
}

// IsElapsed returns true if the reservation start time has passed
func (r *Reservation) IsElapsed(now time.Time) bool {
	return !r.StartTime.After(now)
}

// OccupiesAt reports whether the reservation occupies its table at now,
// i.e. now is inside the trailing occupancy window after the start time
func (r *Reservation) OccupiesAt(now time.Time, window time.Duration) bool {
	return !r.StartTime.After(now) && r.StartTime.Add(window).After(now)
}

// StatusLabel returns the presentation status relative to now
func (r *Reservation) StatusLabel(now time.Time) string {
	if r.IsUpcoming(now) {
		return StatusUpcomingLabel
	}
	return StatusCompletedLabel
}

// TypeLabel returns the presentation table type of the reservation
func (r *Reservation) TypeLabel() string {
	if r.IsVIP() {
		return TableTypeVIPLabel
	}
	return TableTypeStandardLabel
}
