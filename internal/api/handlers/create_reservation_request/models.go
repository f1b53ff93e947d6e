package create_reservation_request

import (
	createRequest "github.com/m04kA/SLB-ReservationService/internal/usecase/create_reservation_request"
)

// CreateReservationRequestRequest HTTP request model
type CreateReservationRequestRequest struct {
	SessionID string  `json:"sessionId"`
	Name      string  `json:"name"`
	Contact   string  `json:"contact"`
	Notes     *string `json:"notes,omitempty"`
}

// RequestedSlotResponse один запрошенный слот заявки
type RequestedSlotResponse struct {
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// ReservationRequestResponse HTTP response model
type ReservationRequestResponse struct {
	ID         int64                   `json:"id"`
	ProviderID int64                   `json:"providerId"`
	UserID     int64                   `json:"userId"`
	Source     string                  `json:"source"`
	Status     string                  `json:"status"`
	Name       string                  `json:"name"`
	Contact    string                  `json:"contact"`
	Notes      *string                 `json:"notes,omitempty"`
	Slots      []RequestedSlotResponse `json:"slots"`
	CreatedAt  string                  `json:"createdAt"`
	UpdatedAt  string                  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequestRequest) ToUseCaseRequest(userID int64) *createRequest.Request {
	return &createRequest.Request{
		SessionID: r.SessionID,
		UserID:    userID,
		Name:      r.Name,
		Contact:   r.Contact,
		Notes:     r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createRequest.Response) *ReservationRequestResponse {
	slots := make([]RequestedSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = RequestedSlotResponse{
			StartAt: slot.StartAt,
			EndAt:   slot.EndAt,
			Date:    slot.Date,
			Status:  slot.Status,
		}
	}

	return &ReservationRequestResponse{
		ID:         resp.ID,
		ProviderID: resp.ProviderID,
		UserID:     resp.UserID,
		Source:     resp.Source,
		Status:     resp.Status,
		Name:       resp.Name,
		Contact:    resp.Contact,
		Notes:      resp.Notes,
		Slots:      slots,
		CreatedAt:  resp.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  resp.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
