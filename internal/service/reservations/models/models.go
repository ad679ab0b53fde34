package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationItem одна бронь в списке для слоя представления
type ReservationItem struct {
	TableID      string    `json:"tableId"`
	TableName    string    `json:"tableName"`
	StartTime    time.Time `json:"startTime"`
	Date         string    `json:"date"`   // YYYY-MM-DD
	Time         string    `json:"time"`   // HH:MM
	Type         string    `json:"type"`   // Standard | VIP
	Status       string    `json:"status"` // Upcoming | Completed
	CustomerName string    `json:"customerName"`
	Username     string    `json:"username"`
	Seats        int       `json:"seats"`
}

// ListResponse список броней
type ListResponse struct {
	Reservations []ReservationItem `json:"reservations"`
	Total        int               `json:"total"`
}

// FromDomainReservation конвертирует доменную бронь в модель представления
func FromDomainReservation(res *domain.Reservation, now time.Time) ReservationItem {
	return ReservationItem{
		TableID:      res.TableID,
		TableName:    domain.TableDisplayName(res.TableID),
		StartTime:    res.StartTime,
		Date:         res.StartTime.Format(domain.DateFormat),
		Time:         res.StartTime.Format(domain.TimeFormat),
		Type:         res.TypeLabel(),
		Status:       res.StatusLabel(now),
		CustomerName: res.CustomerName,
		Username:     res.Username,
		Seats:        res.Seats,
	}
}

// FromDomainReservationList конвертирует список доменных броней
func FromDomainReservationList(list []*domain.Reservation, now time.Time) *ListResponse {
	items := make([]ReservationItem, 0, len(list))
	for _, res := range list {
		items = append(items, FromDomainReservation(res, now))
	}
	return &ListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
