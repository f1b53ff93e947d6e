package set_form_tab

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLB-ReservationService/internal/api/handlers"
	"github.com/m04kA/SLB-ReservationService/internal/service/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTab         = "некорректная вкладка формы, ожидается schedule или info"
	msgSessionNotFound    = "сессия не найдена или истекла"
)

// SetFormTabRequest HTTP request model
type SetFormTabRequest struct {
	Tab string `json:"tab"`
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

// Handle PATCH /api/v1/sessions/{sessionId}/form/tab
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetFormTabRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/form/tab - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.SetFormTab(r.Context(), sessionID, req.Tab)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/form/tab - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selection.ErrInvalidTab):
			h.logger.Warn("PATCH /sessions/{id}/form/tab - Invalid tab: session_id=%s, tab=%q", sessionID, req.Tab)
			handlers.RespondBadRequest(w, msgInvalidTab)

		default:
			h.logger.Error("PATCH /sessions/{id}/form/tab - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
