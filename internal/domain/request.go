package domain

import "time"

// RequestStatus represents the lifecycle status of a reservation request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusExpired   RequestStatus = "expired"
)

// IsValid returns true if the status is one of the known values
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusConfirmed, RequestStatusDeclined, RequestStatusExpired:
		return true
	}
	return false
}

// IsDecided returns true if an operator has already acted on the request
func (s RequestStatus) IsDecided() bool {
	return s == RequestStatusConfirmed || s == RequestStatusDeclined
}

// RequestedSlot one of the (at most MaxSelectedSlots) slots a visitor asked for
type RequestedSlot struct {
	StartAt string
	EndAt   string
	Date    string
	Status  SlotStatus
}

// ReservationRequest a non-binding reservation request submitted from the
// overlay. An operator confirms or declines it out-of-band; Position inside
// Slots preserves the visitor's preference order
type ReservationRequest struct {
	ID         int64
	ProviderID int64
	UserID     int64
	Source     SourceType
	Status     RequestStatus
	Name       string
	Contact    string
	Notes      *string
	Slots      []RequestedSlot

	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeDecided returns true if the request still awaits an operator decision
func (r *ReservationRequest) CanBeDecided() bool {
	return r.Status == RequestStatusPending
}

// ProviderRequestsFilter фильтр для выборки заявок провайдера
type ProviderRequestsFilter struct {
	ProviderID int64          // Обязательный параметр
	Status     *RequestStatus // Фильтр по статусу (опционально)
	Since      *time.Time     // Нижняя граница created_at (опционально)
	Until      *time.Time     // Верхняя граница created_at (опционально)
}
