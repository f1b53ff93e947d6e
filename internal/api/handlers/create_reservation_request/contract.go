package create_reservation_request

import (
	"context"

	createRequest "github.com/m04kA/SLB-ReservationService/internal/usecase/create_reservation_request"
)

type CreateReservationRequestUseCase interface {
	Execute(ctx context.Context, req *createRequest.Request) (*createRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
