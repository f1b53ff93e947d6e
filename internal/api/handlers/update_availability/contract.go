package update_availability

import (
	"context"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	selectionModels "github.com/m04kA/SLB-ReservationService/internal/service/selection/models"
)

type SelectionService interface {
	BeginRefresh(ctx context.Context, sessionID string) (*selectionModels.CalendarView, error)
	UpdateAvailability(ctx context.Context, sessionID string, freshDays []domain.RawDay) (*selectionModels.CalendarView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
