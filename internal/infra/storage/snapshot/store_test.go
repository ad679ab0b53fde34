package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tables_snapshot.json")
	store := NewStore(path, nopLogger{})

	reservedAt := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)
	snap := Snapshot{
		"Table1": {
			Seats:           4,
			IsReserved:      true,
			ReservationTime: ptr.Ptr(reservedAt),
			CustomerName:    "Alice",
			ReservedTimes:   []string{reservedAt.Format(time.RFC3339)},
		},
		"Table2": {
			Seats:         4,
			ReservedTimes: []string{},
		},
	}

	require.NoError(t, store.Save(snap))

	loaded := store.Load()
	require.Len(t, loaded, 2)

	table1 := loaded["Table1"]
	assert.True(t, table1.IsReserved)
	assert.Equal(t, "Alice", table1.CustomerName)
	require.NotNil(t, table1.ReservationTime)
	assert.True(t, table1.ReservationTime.Equal(reservedAt))
	assert.Equal(t, []string{"2025-06-15T19:00:00Z"}, table1.ReservedTimes)

	assert.False(t, loaded["Table2"].IsReserved)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"), nopLogger{})

	loaded := store.Load()
	assert.Empty(t, loaded)
}

func TestStore_LoadCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStore(path, nopLogger{})

	loaded := store.Load()
	assert.Empty(t, loaded)
}

func TestStore_SaveOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewStore(path, nopLogger{})

	require.NoError(t, store.Save(Snapshot{"Table1": {Seats: 4}}))
	require.NoError(t, store.Save(Snapshot{"Table1": {Seats: 4, IsReserved: true}}))

	loaded := store.Load()
	assert.True(t, loaded["Table1"].IsReserved)

	// Временный файл не должен оставаться после rename
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
