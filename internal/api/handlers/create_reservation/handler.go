package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	bookTable "github.com/m04kA/SMC-ReservationService/internal/usecase/book_table"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени, ожидается RFC 3339"
	msgTableNotFound      = "стол не найден"
	msgSlotTaken          = "стол уже забронирован на это время"
	msgPastTime           = "время брони уже прошло"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase BookTableUseCase
	logger  Logger
}

func NewHandler(useCase BookTableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing identity in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Декодируем body
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в запрос use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(identity.Username)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Создаем бронь
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookTable.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: table_id=%s", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, bookTable.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: table_id=%s, start_time=%s",
				req.TableID, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookTable.ErrPastTime):
			h.logger.Warn("POST /reservations - Past time: table_id=%s, start_time=%s",
				req.TableID, req.StartTime)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, bookTable.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: table_id=%s, error=%v",
				req.TableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: table_id=%s, start_time=%s, username=%s",
		result.TableID, req.StartTime, identity.Username)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
