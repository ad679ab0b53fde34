package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgMissingTime   = "время обязательно"
	msgInvalidTime   = "некорректный формат времени, ожидается RFC 3339"
	msgTableNotFound = "стол не найден"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TableID   string `json:"tableId"`
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// Handle GET /api/v1/tables/{tableId}/availability
// Query params: time (required, RFC 3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID := vars["tableId"]

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /tables/{id}/availability - Missing time: table_id=%s", tableID)
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	startTime, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/availability - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	available, err := h.service.IsAvailable(r.Context(), tableID, startTime)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/availability - Table not found: table_id=%s", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("GET /tables/{id}/availability - Failed to check availability: table_id=%s, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		TableID:   tableID,
		StartTime: startTime.Format(time.RFC3339),
		Available: available,
	})
}
