package update_request_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLB-ReservationService/internal/api/handlers"
	"github.com/m04kA/SLB-ReservationService/internal/service/requests"
	requestModels "github.com/m04kA/SLB-ReservationService/internal/service/requests/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidStatus      = "некорректный статус, ожидается confirmed или declined"
	msgNotFound           = "заявка не найдена"
	msgAlreadyDecided     = "заявка уже обработана"
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

// Handle PATCH /api/v1/reservation-requests/{requestId}/status
// Решение оператора: перевод pending-заявки в confirmed или declined
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestIDStr := mux.Vars(r)["requestId"]

	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservation-requests/{id}/status - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req requestModels.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservation-requests/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	request, err := h.service.UpdateStatus(r.Context(), requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrRequestNotFound):
			h.logger.Warn("PATCH /reservation-requests/{id}/status - Not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, requests.ErrAlreadyDecided):
			h.logger.Warn("PATCH /reservation-requests/{id}/status - Already decided: request_id=%d", requestID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		case errors.Is(err, requests.ErrInvalidStatus):
			h.logger.Warn("PATCH /reservation-requests/{id}/status - Invalid status: request_id=%d, status=%q",
				requestID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /reservation-requests/{id}/status - Failed: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservation-requests/{id}/status - Status updated: request_id=%d, status=%s",
		requestID, request.Status)
	handlers.RespondJSON(w, http.StatusOK, request)
}
