package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/config"
)

func TestNewRegistry_OrdersByNumericSuffix(t *testing.T) {
	registry, err := NewRegistry([]config.TableConfig{
		{ID: "Table12", Seats: 4},
		{ID: "Table2", Seats: 4},
		{ID: "Table1", Seats: 4},
		{ID: "Table13", Seats: 8},
	})
	require.NoError(t, err)

	all := registry.All()
	require.Len(t, all, 4)
	assert.Equal(t, "Table1", all[0].ID)
	assert.Equal(t, "Table2", all[1].ID)
	assert.Equal(t, "Table12", all[2].ID)
	assert.Equal(t, "Table13", all[3].ID)
	assert.Equal(t, 4, registry.Count())
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	_, err := NewRegistry([]config.TableConfig{
		{ID: "Table1", Seats: 4},
		{ID: "Table1", Seats: 8},
	})
	assert.ErrorIs(t, err, ErrDuplicateTable)
}

func TestRegistry_Get(t *testing.T) {
	registry, err := NewRegistry([]config.TableConfig{
		{ID: "Table13", Seats: 8, MinSpend: 500, SpecialNotes: "Private dining area"},
	})
	require.NoError(t, err)

	table, err := registry.Get("Table13")
	require.NoError(t, err)
	assert.Equal(t, 8, table.Seats)
	assert.True(t, table.IsVIP())
	assert.Equal(t, "Private dining area", table.SpecialNotes)

	_, err = registry.Get("Table99")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	registry, err := NewRegistry([]config.TableConfig{
		{ID: "Table1", Seats: 4},
	})
	require.NoError(t, err)

	all := registry.All()
	all[0].Seats = 99

	table, err := registry.Get("Table1")
	require.NoError(t, err)
	assert.Equal(t, 4, table.Seats)
}
