package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Tables   []TableConfig  `toml:"tables"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	Migrate         bool   `toml:"migrate"`
	MigrationsDir   string `toml:"migrations_dir"`
}

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig бизнес-параметры ресторана
type BusinessConfig struct {
	OpenTime               string `toml:"open_time"`                // "11:00"
	CloseTime              string `toml:"close_time"`               // "22:00"
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"` // Шаг слотов
	SweepIntervalSeconds   int    `toml:"sweep_interval_seconds"`   // Период фоновой очистки
	OccupancyWindowMinutes int    `toml:"occupancy_window_minutes"` // Окно занятости стола после начала брони
	SmallTableCount        int    `toml:"small_table_count"`
	BigTableCount          int    `toml:"big_table_count"`
}

// SnapshotConfig настройки снапшота состояния столов
type SnapshotConfig struct {
	Path string `toml:"path"`
}

// TableConfig описание стола в статическом каталоге
type TableConfig struct {
	ID           string  `toml:"id"`
	Seats        int     `toml:"seats"`
	MinSpend     float64 `toml:"min_spend"`
	SpecialNotes string  `toml:"special_notes"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse toml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults заполняет незаданные бизнес-параметры значениями по умолчанию
func (c *Config) applyDefaults() {
	if c.Business.OpenTime == "" {
		c.Business.OpenTime = domain.DefaultOpenTime
	}
	if c.Business.CloseTime == "" {
		c.Business.CloseTime = domain.DefaultCloseTime
	}
	if c.Business.SlotGranularityMinutes == 0 {
		c.Business.SlotGranularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	if c.Business.SweepIntervalSeconds == 0 {
		c.Business.SweepIntervalSeconds = domain.DefaultSweepIntervalSeconds
	}
	if c.Business.OccupancyWindowMinutes == 0 {
		c.Business.OccupancyWindowMinutes = domain.DefaultOccupancyWindowMinutes
	}
	if c.Business.SmallTableCount == 0 {
		c.Business.SmallTableCount = domain.DefaultSmallTableCount
	}
	if c.Business.BigTableCount == 0 {
		c.Business.BigTableCount = domain.DefaultBigTableCount
	}
	if c.Database.MigrationsDir == "" {
		c.Database.MigrationsDir = "migrations"
	}

	// Каталог столов по умолчанию: 12 обычных на 4 места и 2 VIP на 8 мест
	if len(c.Tables) == 0 {
		for i := 1; i <= domain.DefaultSmallTableCount; i++ {
			c.Tables = append(c.Tables, TableConfig{
				ID:    fmt.Sprintf("Table%d", i),
				Seats: domain.SmallTableSeats,
			})
		}
		for i := 1; i <= domain.DefaultBigTableCount; i++ {
			c.Tables = append(c.Tables, TableConfig{
				ID:       fmt.Sprintf("Table%d", domain.DefaultSmallTableCount+i),
				Seats:    domain.BigTableSeats,
				MinSpend: 100,
			})
		}
	}
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	for i, t := range c.Tables {
		if t.ID == "" {
			return fmt.Errorf("config: tables[%d].id is required", i)
		}
		if t.Seats <= 0 {
			return fmt.Errorf("config: tables[%d].seats must be positive", i)
		}
	}
	return nil
}
