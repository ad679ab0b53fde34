package list_tables

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// TableResponse HTTP-модель одного стола
type TableResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Seats        int     `json:"seats"`
	Type         string  `json:"type"` // Standard | VIP
	MinSpend     float64 `json:"minSpend,omitempty"`
	SpecialNotes string  `json:"specialNotes,omitempty"`
}

// ListTablesResponse HTTP-модель списка столов
type ListTablesResponse struct {
	Tables []TableResponse `json:"tables"`
	Total  int             `json:"total"`
}

// FromDomainTables конвертирует каталог столов в HTTP-модель
func FromDomainTables(tables []domain.Table) *ListTablesResponse {
	items := make([]TableResponse, 0, len(tables))
	for i := range tables {
		t := &tables[i]
		items = append(items, TableResponse{
			ID:           t.ID,
			Name:         t.DisplayName(),
			Seats:        t.Seats,
			Type:         t.TypeLabel(),
			MinSpend:     t.MinSpend,
			SpecialNotes: t.SpecialNotes,
		})
	}
	return &ListTablesResponse{
		Tables: items,
		Total:  len(items),
	}
}
