package templates

import (
	"context"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов fallback-расписаний
type TemplateRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.FallbackTemplate, error)
	ReplaceForProvider(ctx context.Context, tmpl *domain.FallbackTemplate) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
