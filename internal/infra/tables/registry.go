package tables

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Registry статический каталог столов ресторана
// Строится один раз при старте из конфигурации и дальше только читается,
// поэтому безопасен для конкурентного доступа без блокировок
type Registry struct {
	byID    map[string]domain.Table
	ordered []domain.Table
}

// NewRegistry строит каталог столов из конфигурации
func NewRegistry(tableConfigs []config.TableConfig) (*Registry, error) {
	r := &Registry{
		byID:    make(map[string]domain.Table, len(tableConfigs)),
		ordered: make([]domain.Table, 0, len(tableConfigs)),
	}

	for _, tc := range tableConfigs {
		if _, exists := r.byID[tc.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTable, tc.ID)
		}
		table := domain.Table{
			ID:           tc.ID,
			Seats:        tc.Seats,
			MinSpend:     tc.MinSpend,
			SpecialNotes: tc.SpecialNotes,
		}
		r.byID[tc.ID] = table
		r.ordered = append(r.ordered, table)
	}

	// Стабильный порядок: по числовому суффиксу ID, затем лексикографически
	sort.SliceStable(r.ordered, func(i, j int) bool {
		ni, iOK := numericSuffix(r.ordered[i].ID)
		nj, jOK := numericSuffix(r.ordered[j].ID)
		if iOK && jOK && ni != nj {
			return ni < nj
		}
		return r.ordered[i].ID < r.ordered[j].ID
	})

	return r, nil
}

// Get возвращает стол по ID
func (r *Registry) Get(tableID string) (domain.Table, error) {
	table, ok := r.byID[tableID]
	if !ok {
		return domain.Table{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	return table, nil
}

// All возвращает все столы в стабильном порядке
func (r *Registry) All() []domain.Table {
	out := make([]domain.Table, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Count возвращает количество столов в каталоге
func (r *Registry) Count() int {
	return len(r.ordered)
}

// numericSuffix извлекает числовой суффикс из ID стола ("Table12" -> 12)
func numericSuffix(tableID string) (int, bool) {
	start := -1
	for i, ch := range tableID {
		if ch >= '0' && ch <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(tableID[start:])
	if err != nil {
		return 0, false
	}
	return n, true
}
