package export_reservations

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	listReservations "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра"
	msgUnauthorized  = "требуется аутентификация"
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

// Handle GET /api/v1/reservations/export
// Принимает те же query параметры, что и листинг броней.
// Отдает CSV-файл с видимыми пользователю бронями.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/export - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter := listReservations.ParseFilterQuery(r.URL.Query())

	data, err := h.service.ExportCSV(r.Context(), identity.Username, identity.Role, filter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidFilter):
			h.logger.Warn("GET /reservations/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reservations/export - Failed to export reservations: username=%s, error=%v",
				identity.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filename := fmt.Sprintf("reservations-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)

	h.logger.Info("GET /reservations/export - Exported reservations: username=%s, bytes=%d",
		identity.Username, len(data))
}
