package close_form

import (
	"context"

	selectionModels "github.com/m04kA/SLB-ReservationService/internal/service/selection/models"
)

type SelectionService interface {
	CloseForm(ctx context.Context, sessionID string) (*selectionModels.CalendarView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
