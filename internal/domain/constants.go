package domain

// Default business configuration values
const (
	DefaultOpenTime               = "11:00"
	DefaultCloseTime              = "22:00"
	DefaultSlotGranularityMinutes = 30
	DefaultSweepIntervalSeconds   = 60
	DefaultOccupancyWindowMinutes = 60
	DefaultSmallTableCount        = 12
	DefaultBigTableCount          = 2
)

// Table capacity constants
const (
	SmallTableSeats   = 4
	BigTableSeats     = 8
	VIPSeatsThreshold = 8
)

// Wait-time heuristic constants
const (
	MaxWaitMinutes      = 90
	MinWaitMinutes      = 5
	WaitRoundingMinutes = 5
	BigTableWaitOneBusy = 30
	BigTableWaitAllBusy = 90
)

// Per-reservation revenue used by the daily stats
const (
	VIPReservationRevenue      = 200
	StandardReservationRevenue = 100
)

// Presentation labels
const (
	StatusUpcomingLabel    = "Upcoming"
	StatusCompletedLabel   = "Completed"
	TableTypeVIPLabel      = "VIP"
	TableTypeStandardLabel = "Standard"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxCustomerNameLength = 100
	MaxSearchTextLength   = 100
)
