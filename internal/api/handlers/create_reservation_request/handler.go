package create_reservation_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SLB-ReservationService/internal/api/handlers"
	"github.com/m04kA/SLB-ReservationService/internal/api/middleware"
	createRequest "github.com/m04kA/SLB-ReservationService/internal/usecase/create_reservation_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgEmptySelection     = "в сессии нет выбранных слотов"
)

type Handler struct {
	useCase CreateReservationRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservation-requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservation-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createRequest.ErrSessionNotFound):
			h.logger.Warn("POST /reservation-requests - Session not found: session_id=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createRequest.ErrEmptySelection):
			h.logger.Warn("POST /reservation-requests - Empty selection: session_id=%s", req.SessionID)
			handlers.RespondConflict(w, msgEmptySelection)

		case errors.Is(err, createRequest.ErrInvalidInput), errors.Is(err, createRequest.ErrTooManySlots):
			h.logger.Warn("POST /reservation-requests - Invalid input: session_id=%s, error=%v", req.SessionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservation-requests - Failed: session_id=%s, user_id=%d, error=%v",
				req.SessionID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservation-requests - Request created: request_id=%d, user_id=%d, provider_id=%d",
		result.ID, userID, result.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
