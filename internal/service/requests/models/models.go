package models

import (
	"errors"
	"time"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid request status")
)

// Request модели

// UpdateStatusRequest запрос на решение оператора по заявке
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetProviderRequestsRequest запрос на получение заявок провайдера
type GetProviderRequestsRequest struct {
	ProviderID int64      `json:"providerId"`
	Status     *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Since      *time.Time `json:"since,omitempty"`  // Нижняя граница created_at (опционально)
	Until      *time.Time `json:"until,omitempty"`  // Верхняя граница created_at (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetProviderRequestsRequest) ToDomainFilter() (domain.ProviderRequestsFilter, error) {
	filter := domain.ProviderRequestsFilter{
		ProviderID: r.ProviderID,
		Since:      r.Since,
		Until:      r.Until,
	}

	if r.Status != nil {
		status, err := ToDomainRequestStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainRequestStatus конвертирует строку в доменный статус заявки
func ToDomainRequestStatus(status string) (domain.RequestStatus, error) {
	s := domain.RequestStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Response модели

// RequestedSlotResponse один запрошенный слот заявки
type RequestedSlotResponse struct {
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// RequestResponse заявка на бронирование
type RequestResponse struct {
	ID         int64                   `json:"id"`
	ProviderID int64                   `json:"providerId"`
	UserID     int64                   `json:"userId"`
	Source     string                  `json:"source"`
	Status     string                  `json:"status"`
	Name       string                  `json:"name"`
	Contact    string                  `json:"contact"`
	Notes      *string                 `json:"notes,omitempty"`
	Slots      []RequestedSlotResponse `json:"slots"`
	DecidedAt  *time.Time              `json:"decidedAt,omitempty"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

// RequestListResponse список заявок
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}

// FromDomainRequest конвертирует доменную заявку в response
func FromDomainRequest(request *domain.ReservationRequest) *RequestResponse {
	slots := make([]RequestedSlotResponse, len(request.Slots))
	for i, slot := range request.Slots {
		slots[i] = RequestedSlotResponse{
			StartAt: slot.StartAt,
			EndAt:   slot.EndAt,
			Date:    slot.Date,
			Status:  string(slot.Status),
		}
	}

	return &RequestResponse{
		ID:         request.ID,
		ProviderID: request.ProviderID,
		UserID:     request.UserID,
		Source:     string(request.Source),
		Status:     string(request.Status),
		Name:       request.Name,
		Contact:    request.Contact,
		Notes:      request.Notes,
		Slots:      slots,
		DecidedAt:  request.DecidedAt,
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  request.UpdatedAt,
	}
}

// FromDomainRequestList конвертирует список доменных заявок в response
func FromDomainRequestList(requests []*domain.ReservationRequest) *RequestListResponse {
	out := make([]RequestResponse, len(requests))
	for i, request := range requests {
		out[i] = *FromDomainRequest(request)
	}
	return &RequestListResponse{
		Requests: out,
		Total:    len(out),
	}
}
