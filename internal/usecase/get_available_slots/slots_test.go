package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var testHours = BusinessHours{
	OpenTime:           types.TimeString("11:00"),
	CloseTime:          types.TimeString("22:00"),
	GranularityMinutes: 30,
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestGenerateTimeSlots_FutureDate(t *testing.T) {
	now := at(2025, 6, 15, 14, 10)

	slots, err := generateTimeSlots(testHours, date(2025, 6, 16), now)
	require.NoError(t, err)

	// 11:00..22:00 каждые 30 минут, обе границы включительно
	require.Len(t, slots, 23)
	assert.Equal(t, at(2025, 6, 16, 11, 0), slots[0])
	assert.Equal(t, at(2025, 6, 16, 22, 0), slots[len(slots)-1])
}

func TestGenerateTimeSlots_TodayDropsElapsed(t *testing.T) {
	now := at(2025, 6, 15, 14, 10)

	slots, err := generateTimeSlots(testHours, date(2025, 6, 15), now)
	require.NoError(t, err)

	// Первый доступный слот - строго позже 14:10
	require.NotEmpty(t, slots)
	assert.Equal(t, at(2025, 6, 15, 14, 30), slots[0])
	assert.Equal(t, at(2025, 6, 15, 22, 0), slots[len(slots)-1])
	require.Len(t, slots, 16)
}

func TestGenerateTimeSlots_TodayExactSlotBoundary(t *testing.T) {
	// Слот на текущей минуте уже недоступен
	now := at(2025, 6, 15, 14, 30)

	slots, err := generateTimeSlots(testHours, date(2025, 6, 15), now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, at(2025, 6, 15, 15, 0), slots[0])
}

func TestGenerateTimeSlots_PastDateEmpty(t *testing.T) {
	now := at(2025, 6, 15, 14, 10)

	slots, err := generateTimeSlots(testHours, date(2025, 6, 14), now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_AfterClosingEmpty(t *testing.T) {
	now := at(2025, 6, 15, 22, 30)

	slots, err := generateTimeSlots(testHours, date(2025, 6, 15), now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestMarkAvailability_ExactMatchOnly(t *testing.T) {
	slots := []time.Time{
		at(2025, 6, 16, 18, 0),
		at(2025, 6, 16, 18, 30),
		at(2025, 6, 16, 19, 0),
	}

	reservations := []*domain.Reservation{
		{TableID: "Table5", StartTime: at(2025, 6, 16, 18, 30), Active: true},
		// Истекшая бронь слот не занимает
		{TableID: "Table5", StartTime: at(2025, 6, 16, 19, 0), Active: false},
	}

	marked := markAvailability(slots, reservations)
	require.Len(t, marked, 3)

	assert.True(t, marked[0].Available)
	assert.False(t, marked[1].Available)
	assert.True(t, marked[2].Available)
}
