package cancel_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgMissingTime  = "время обязательно"
	msgInvalidTime  = "некорректный формат времени, ожидается RFC 3339"
	msgNotFound     = "бронь не найдена"
	msgForbidden    = "доступ запрещен"
	msgUnauthorized = "требуется аутентификация"
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

// Handle DELETE /api/v1/reservations/{tableId}
// Query params: time (required, RFC 3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reservations/{id} - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	tableID := vars["tableId"]

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("DELETE /reservations/{id} - Missing time: table_id=%s", tableID)
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	startTime, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Отменяем бронь
	err = h.service.Cancel(r.Context(), tableID, startTime, identity.Username, identity.Role)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrTableNotFound), errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: table_id=%s, start_time=%s",
				tableID, timeStr)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/{id} - Access denied: table_id=%s, username=%s",
				tableID, identity.Username)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to cancel reservation: table_id=%s, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled: table_id=%s, start_time=%s, username=%s",
		tableID, timeStr, identity.Username)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
