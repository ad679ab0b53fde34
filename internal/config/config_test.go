package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "reservation"
password = "secret"
dbname = "reservations"
sslmode = "disable"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "11:00", cfg.Business.OpenTime)
	assert.Equal(t, "22:00", cfg.Business.CloseTime)
	assert.Equal(t, 30, cfg.Business.SlotGranularityMinutes)
	assert.Equal(t, 60, cfg.Business.SweepIntervalSeconds)
	assert.Equal(t, 60, cfg.Business.OccupancyWindowMinutes)

	// Каталог по умолчанию: 12 столов на 4 места и 2 на 8 мест
	require.Len(t, cfg.Tables, 14)
	assert.Equal(t, "Table1", cfg.Tables[0].ID)
	assert.Equal(t, 4, cfg.Tables[0].Seats)
	assert.Equal(t, "Table13", cfg.Tables[12].ID)
	assert.Equal(t, 8, cfg.Tables[12].Seats)
	assert.Equal(t, "Table14", cfg.Tables[13].ID)
}

func TestLoad_ExplicitTablesOverrideDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[[tables]]
id = "Patio1"
seats = 6
special_notes = "Outdoor seating"
`))
	require.NoError(t, err)

	require.Len(t, cfg.Tables, 1)
	assert.Equal(t, "Patio1", cfg.Tables[0].ID)
	assert.Equal(t, "Outdoor seating", cfg.Tables[0].SpecialNotes)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing port", content: `
[database]
host = "localhost"
dbname = "reservations"
`},
		{name: "missing database", content: `
[server]
http_port = 8080
`},
		{name: "table without seats", content: minimalConfig + `
[[tables]]
id = "Table1"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "secret",
		DBName: "reservations", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=reservations sslmode=disable",
		cfg.DSN())
}
