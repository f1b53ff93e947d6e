package get_fallback_template

import (
	"context"

	templatesModels "github.com/m04kA/SLB-ReservationService/internal/service/templates/models"
)

type TemplatesService interface {
	Get(ctx context.Context, providerID int64) (*templatesModels.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
