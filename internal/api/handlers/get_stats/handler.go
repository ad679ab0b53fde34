package get_stats

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
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

// StatsResponse HTTP response model
type StatsResponse struct {
	TotalTables          int `json:"totalTables"`
	ActiveReservations   int `json:"activeReservations"`
	DailyRevenue         int `json:"dailyRevenue"`
	VIPReservationsToday int `json:"vipReservationsToday"`
}

// FromDomainStats конвертирует доменную сводку в HTTP response
func FromDomainStats(stats *domain.DashboardStats) *StatsResponse {
	return &StatsResponse{
		TotalTables:          stats.TotalTables,
		ActiveReservations:   stats.ActiveReservations,
		DailyRevenue:         stats.DailyRevenue,
		VIPReservationsToday: stats.VIPReservationsToday,
	}
}

// Handle GET /api/v1/stats
// Сводка дня доступна только менеджерам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /stats - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if !identity.Role.IsManager() {
		h.logger.Warn("GET /stats - Access denied: username=%s, role=%s", identity.Username, identity.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainStats(stats))
}
