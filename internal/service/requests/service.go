package requests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	requestRepo "github.com/m04kA/SLB-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SLB-ReservationService/internal/service/requests/models"
)

// Service сервис для работы с заявками на бронирование
type Service struct {
	requestRepo  RequestRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	requestRepo RequestRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RequestResponse, error) {
	s.logger.Info("GetByID: fetching request id=%d", id)

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRequest(request), nil
}

// GetProviderRequests получает заявки провайдера с фильтрацией
// Поддерживает фильтрацию по статусу и периоду создания
func (s *Service) GetProviderRequests(ctx context.Context, req *models.GetProviderRequestsRequest) (*models.RequestListResponse, error) {
	s.logger.Info("GetProviderRequests: fetching requests for provider=%d, status=%v", req.ProviderID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderRequests: invalid filter for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	requests, err := s.requestRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderRequests: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderRequests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderRequests: successfully fetched %d requests for provider=%d", len(requests), req.ProviderID)
	return models.FromDomainRequestList(requests), nil
}

// UpdateStatus применяет решение оператора к заявке
// Переход разрешен только из pending в confirmed или declined;
// смена статуса выполняется в транзакции с блокировкой строки
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.RequestResponse, error) {
	s.logger.Info("UpdateStatus: request id=%d, new status=%s", id, req.Status)

	status, err := models.ToDomainRequestStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for request id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}
	if !status.IsDecided() {
		s.logger.Warn("UpdateStatus: status=%s is not an operator decision, request id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var updated *domain.ReservationRequest
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.requestRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !request.CanBeDecided() {
			return requestRepo.ErrAlreadyDecided
		}

		decidedAt := s.timeProvider.Now()
		if err := s.requestRepo.UpdateStatus(ctx, id, status, decidedAt); err != nil {
			return err
		}

		request.Status = status
		request.DecidedAt = &decidedAt
		request.UpdatedAt = decidedAt
		updated = request
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, requestRepo.ErrRequestNotFound):
			s.logger.Warn("UpdateStatus: request id=%d not found", id)
			return nil, ErrRequestNotFound
		case errors.Is(err, requestRepo.ErrAlreadyDecided):
			s.logger.Warn("UpdateStatus: request id=%d already decided", id)
			return nil, ErrAlreadyDecided
		default:
			s.logger.Error("UpdateStatus: transaction error for request id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - transaction error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: request id=%d moved to status=%s", id, status)
	return models.FromDomainRequest(updated), nil
}

// ExpireStale переводит в expired все pending-заявки старше maxAge
// Вызывается планировщиком; возвращает количество обработанных заявок
func (s *Service) ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.timeProvider.Now().Add(-maxAge)
	s.logger.Info("ExpireStale: expiring pending requests created before %s", cutoff.Format(time.RFC3339))

	expired, err := s.requestRepo.ExpireStale(ctx, cutoff)
	if err != nil {
		s.logger.Error("ExpireStale: repository error: %v", err)
		return 0, fmt.Errorf("%w: ExpireStale - repository error: %v", ErrInternal, err)
	}

	if expired > 0 {
		s.logger.Info("ExpireStale: expired %d stale requests", expired)
	}
	return expired, nil
}
