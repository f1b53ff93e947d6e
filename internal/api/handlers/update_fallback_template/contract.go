package update_fallback_template

import (
	"context"

	templatesModels "github.com/m04kA/SLB-ReservationService/internal/service/templates/models"
)

type TemplatesService interface {
	Replace(ctx context.Context, req *templatesModels.ReplaceTemplateRequest) (*templatesModels.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
