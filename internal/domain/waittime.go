package domain

// WaitTimeReport is the walk-in wait estimate derived from current occupancy
type WaitTimeReport struct {
	TotalTables           int
	OccupiedTables        int
	SmallPartyWaitMinutes int // Parties of up to SmallTableSeats guests
	BigPartyWaitMinutes   int // Parties larger than SmallTableSeats guests
}

// DashboardStats is the manager-facing daily summary
type DashboardStats struct {
	TotalTables          int
	ActiveReservations   int
	DailyRevenue         int
	VIPReservationsToday int
}
