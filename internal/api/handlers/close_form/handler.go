package close_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLB-ReservationService/internal/api/handlers"
	"github.com/m04kA/SLB-ReservationService/internal/service/selection"
)

const (
	msgSessionNotFound = "сессия не найдена или истекла"
)

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

// Handle POST /api/v1/sessions/{sessionId}/form/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.service.CloseForm(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/form/close - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/form/close - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
