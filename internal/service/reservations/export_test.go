package reservations

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	list := []*domain.Reservation{
		{
			TableID:      "Table13",
			StartTime:    time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC),
			CustomerName: "Alice Johnson",
			Seats:        8,
			Active:       true,
		},
		{
			TableID:      "Table2",
			StartTime:    time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC),
			CustomerName: "Bob",
			Seats:        4,
			Active:       false,
		},
	}

	data, err := writeCSV(list, now)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Table", "Date", "Time", "Type", "Status", "CustomerName"}, records[0])
	assert.Equal(t, []string{"Table 13", "2025-06-15", "19:00", "VIP", "Upcoming", "Alice Johnson"}, records[1])
	assert.Equal(t, []string{"Table 2", "2025-06-15", "12:30", "Standard", "Completed", "Bob"}, records[2])
}

func TestWriteCSV_EscapesCommaInName(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	list := []*domain.Reservation{
		{
			TableID:      "Table1",
			StartTime:    now.Add(time.Hour),
			CustomerName: "Johnson, Alice",
			Seats:        4,
			Active:       true,
		},
	}

	data, err := writeCSV(list, now)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Johnson, Alice", records[1][5])
}

func TestWriteCSV_EmptyListKeepsHeader(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	data, err := writeCSV(nil, now)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
