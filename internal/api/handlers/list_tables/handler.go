package list_tables

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	registry TableRegistry
	logger   Logger
}

func NewHandler(registry TableRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle GET /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := FromDomainTables(h.registry.All())
	handlers.RespondJSON(w, http.StatusOK, resp)
}
