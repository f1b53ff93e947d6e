package get_reservation_request

import (
	"context"

	requestModels "github.com/m04kA/SLB-ReservationService/internal/service/requests/models"
)

type RequestsService interface {
	GetByID(ctx context.Context, id int64) (*requestModels.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
