package get_wait_times

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type Handler struct {
	useCase GetWaitTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetWaitTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// WaitTimesResponse HTTP response model
type WaitTimesResponse struct {
	TotalTables           int `json:"totalTables"`
	OccupiedTables        int `json:"occupiedTables"`
	SmallPartyWaitMinutes int `json:"smallPartyWaitMinutes"`
	BigPartyWaitMinutes   int `json:"bigPartyWaitMinutes"`
}

// FromDomainReport конвертирует доменный отчет в HTTP response
func FromDomainReport(report *domain.WaitTimeReport) *WaitTimesResponse {
	return &WaitTimesResponse{
		TotalTables:           report.TotalTables,
		OccupiedTables:        report.OccupiedTables,
		SmallPartyWaitMinutes: report.SmallPartyWaitMinutes,
		BigPartyWaitMinutes:   report.BigPartyWaitMinutes,
	}
}

// Handle GET /api/v1/wait-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /wait-times - Failed to estimate wait times: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainReport(report))
}
