package get_provider_requests

import (
	"context"

	requestModels "github.com/m04kA/SLB-ReservationService/internal/service/requests/models"
)

type RequestsService interface {
	GetProviderRequests(ctx context.Context, req *requestModels.GetProviderRequestsRequest) (*requestModels.RequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
