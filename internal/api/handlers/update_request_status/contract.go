package update_request_status

import (
	"context"

	requestModels "github.com/m04kA/SLB-ReservationService/internal/service/requests/models"
)

type RequestsService interface {
	UpdateStatus(ctx context.Context, id int64, req *requestModels.UpdateStatusRequest) (*requestModels.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
