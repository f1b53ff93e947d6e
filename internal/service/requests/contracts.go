package requests

import (
	"context"
	"time"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	Create(ctx context.Context, request *domain.ReservationRequest) (*domain.ReservationRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderRequestsFilter) ([]*domain.ReservationRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, decidedAt time.Time) error
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс источника текущего времени
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
