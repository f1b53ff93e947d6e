package get_fallback_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLB-ReservationService/internal/api/handlers"
	"github.com/m04kA/SLB-ReservationService/internal/service/templates"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgTemplateNotFound  = "шаблон не найден"
)

type Handler struct {
	service TemplatesService
	logger  Logger
}

func NewHandler(service TemplatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/fallback-template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.ParseInt(mux.Vars(r)["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/fallback-template - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	result, err := h.service.Get(r.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("GET /providers/{id}/fallback-template - Template not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		default:
			h.logger.Error("GET /providers/{id}/fallback-template - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
