package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TableSnapshot состояние одного стола в снапшоте
type TableSnapshot struct {
	Seats           int        `json:"seats"`
	IsReserved      bool       `json:"isReserved"`
	ReservationTime *time.Time `json:"reservationTime,omitempty"`
	CustomerName    string     `json:"customerName"`
	ReservedTimes   []string   `json:"reservedTimes"` // ISO-8601
}

// Snapshot состояние всех столов, ключ - ID стола
type Snapshot map[string]TableSnapshot

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Store файловый снапшот состояния столов для быстрой перезагрузки
// Это сопутствующий слепок основного хранилища, а не источник истины:
// запись best-effort, чтение терпимо к отсутствию и порче файла
type Store struct {
	path   string
	logger Logger
}

// NewStore создает снапшот-хранилище поверх указанного файла
func NewStore(path string, logger Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Save атомарно записывает снапшот (через временный файл и rename)
func (s *Store) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir: %v", ErrWrite, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename: %v", ErrWrite, err)
	}

	return nil
}

// Load читает снапшот с диска
// Отсутствующий или повреждённый файл не фатален: возвращается пустой
// снапшот, условие логируется
func (s *Store) Load() Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("snapshot: no snapshot file at %s, starting empty", s.path)
		} else {
			s.logger.Warn("snapshot: failed to read %s, starting empty: %v", s.path, err)
		}
		return Snapshot{}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("snapshot: corrupted snapshot file %s, starting empty: %v", s.path, err)
		return Snapshot{}
	}

	return snap
}
