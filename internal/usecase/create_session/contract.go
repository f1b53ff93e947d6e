package create_session

import (
	"context"
	"time"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/internal/integrations/providerservice"
	"github.com/m04kA/SLB-ReservationService/internal/service/selection"
	selectionModels "github.com/m04kA/SLB-ReservationService/internal/service/selection/models"
)

// TemplateRepository интерфейс репозитория fallback-шаблонов
type TemplateRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.FallbackTemplate, error)
}

// ProviderServiceClient интерфейс клиента каталога провайдеров
type ProviderServiceClient interface {
	GetProviderWithGracefulDegradation(ctx context.Context, providerID int64) (*providerservice.Provider, error)
}

// SelectionService интерфейс сервиса выбора: регистрация сессии и выдача представления
type SelectionService interface {
	Register(session *selection.Session)
	GetCalendar(ctx context.Context, sessionID string) (*selectionModels.CalendarView, error)
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
