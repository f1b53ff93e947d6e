package create_reservation_request

import (
	"context"
	"time"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	selectionModels "github.com/m04kA/SLB-ReservationService/internal/service/selection/models"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	Create(ctx context.Context, request *domain.ReservationRequest) (*domain.ReservationRequest, error)
}

// SelectionService интерфейс чтения состояния календарной сессии
type SelectionService interface {
	GetCalendar(ctx context.Context, sessionID string) (*selectionModels.CalendarView, error)
	Close(ctx context.Context, sessionID string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
