package update_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLB-ReservationService/internal/api/handlers"
	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/internal/service/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена или истекла"
)

// UpdateAvailabilityRequest HTTP request model
// Пустой список дней валиден: источник пересчитается в fallback или none
type UpdateAvailabilityRequest struct {
	Days []domain.RawDay `json:"days"`
}

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleBegin POST /api/v1/sessions/{sessionId}/availability/refresh
// Выставляет отображательный флаг: сам фетч свежих данных делает фронтенд
func (h *Handler) HandleBegin(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.service.BeginRefresh(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/availability/refresh - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/availability/refresh - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

// Handle PUT /api/v1/sessions/{sessionId}/availability
// Заменяет фид доступности результатом обновления: источник разрешается
// заново, страница прижимается, исчезнувшие слоты выпадают из выбора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.UpdateAvailability(r.Context(), sessionID, req.Days)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/availability - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/availability - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/availability - Availability updated: session_id=%s, source=%s, days=%d",
		sessionID, view.SourceType, len(req.Days))
	handlers.RespondJSON(w, http.StatusOK, view)
}
