package get_provider_requests

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLB-ReservationService/internal/api/handlers"
	"github.com/m04kA/SLB-ReservationService/internal/service/requests"
	requestModels "github.com/m04kA/SLB-ReservationService/internal/service/requests/models"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgInvalidFilter     = "некорректные параметры фильтра"
)

type Handler struct {
	service RequestsService
	logger  Logger
}

func NewHandler(service RequestsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/reservation-requests
// Query параметры: status, since, until (RFC 3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerIDStr := mux.Vars(r)["providerId"]

	providerID, err := strconv.ParseInt(providerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/reservation-requests - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	req := &requestModels.GetProviderRequestsRequest{ProviderID: providerID}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if sinceStr := query.Get("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Since = &since
	}
	if untilStr := query.Get("until"); untilStr != "" {
		until, err := time.Parse(time.RFC3339, untilStr)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Until = &until
	}

	result, err := h.service.GetProviderRequests(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/reservation-requests - Invalid filter: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /providers/{id}/reservation-requests - Failed: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/reservation-requests - Fetched %d requests: provider_id=%d",
		result.Total, providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
