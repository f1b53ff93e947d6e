package create_session

import (
	"github.com/m04kA/SLB-ReservationService/internal/domain"
	selectionModels "github.com/m04kA/SLB-ReservationService/internal/service/selection/models"
	createSession "github.com/m04kA/SLB-ReservationService/internal/usecase/create_session"
)

// CreateSessionRequest HTTP request model
// Фид доступности опционален: без него источник разрешится в fallback или none
type CreateSessionRequest struct {
	Days           []domain.RawDay `json:"days,omitempty"`
	DefaultStartAt string          `json:"defaultStartAt,omitempty"`
}

// CreateSessionResponse HTTP response model
type CreateSessionResponse struct {
	SessionID string                        `json:"sessionId"`
	Calendar  *selectionModels.CalendarView `json:"calendar"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequest) ToUseCaseRequest(providerID int64) *createSession.Request {
	return &createSession.Request{
		ProviderID:     providerID,
		RawDays:        r.Days,
		DefaultStartAt: r.DefaultStartAt,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createSession.Response) *CreateSessionResponse {
	return &CreateSessionResponse{
		SessionID: resp.SessionID,
		Calendar:  resp.View,
	}
}
