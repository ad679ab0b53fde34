package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
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

// Handle GET /api/v1/reservations
// Query params: q, status (all|upcoming|completed), range (all|today|week|month),
// type (all|standard|vip), sort (asc|desc)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter := ParseFilterQuery(r.URL.Query())

	list, err := h.service.List(r.Context(), identity.Username, identity.Role, filter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidFilter):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: username=%s, error=%v",
				identity.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservationList(list, time.Now()))
}
