package toggle_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLB-ReservationService/internal/api/handlers"
	"github.com/m04kA/SLB-ReservationService/internal/service/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingStartAt     = "не указан start_at слота"
	msgSessionNotFound    = "сессия не найдена или истекла"
)

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	StartAt string `json:"startAt"`
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

// Handle POST /api/v1/sessions/{sessionId}/selection/toggle
// Переключение несуществующего или blocked слота - no-op: хендлер все равно
// возвращает актуальное представление
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/selection/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.StartAt == "" {
		handlers.RespondBadRequest(w, msgMissingStartAt)
		return
	}

	view, err := h.service.ToggleSlot(r.Context(), sessionID, req.StartAt)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/selection/toggle - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/selection/toggle - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
