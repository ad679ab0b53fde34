package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookTable "github.com/m04kA/SMC-ReservationService/internal/usecase/book_table"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID      string `json:"tableId"`
	StartTime    string `json:"startTime"` // RFC 3339
	CustomerName string `json:"customerName"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	TableID      string `json:"tableId"`
	StartTime    string `json:"startTime"`
	CustomerName string `json:"customerName"`
	Username     string `json:"username"`
	Seats        int    `json:"seats"`
	Type         string `json:"type"` // Standard | VIP
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateReservationRequest) ToUseCaseRequest(username string) (*bookTable.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookTable.Request{
		TableID:      r.TableID,
		StartTime:    startTime,
		CustomerName: r.CustomerName,
		Username:     username,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookTable.Response) *CreateReservationResponse {
	typeLabel := domain.TableTypeStandardLabel
	if resp.IsVIP {
		typeLabel = domain.TableTypeVIPLabel
	}

	return &CreateReservationResponse{
		TableID:      resp.TableID,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		CustomerName: resp.CustomerName,
		Username:     resp.Username,
		Seats:        resp.Seats,
		Type:         typeLabel,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
