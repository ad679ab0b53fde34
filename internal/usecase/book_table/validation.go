package book_table

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TableID) == "" {
		return fmt.Errorf("%w: tableId is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	return nil
}

// validateNotPast проверяет, что время брони не в прошлом
func validateNotPast(startTime, now time.Time) error {
	if !startTime.After(now) {
		return ErrPastTime
	}
	return nil
}
