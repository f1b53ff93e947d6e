package create_reservation_request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	selectionService "github.com/m04kA/SLB-ReservationService/internal/service/selection"
)

// UseCase use case для создания заявки на бронирование из календарной сессии
type UseCase struct {
	requestRepo  RequestRepository
	selection    SelectionService
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	selection SelectionService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		selection:    selection,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки
// Выбор берется из живой сессии; заявка и её слоты записываются
// в сериализуемой транзакции. Сессия после успешной записи закрывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservationRequest: session=%s, user=%d", req.SessionID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservationRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем состояние сессии
	view, err := uc.selection.GetCalendar(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, selectionService.ErrSessionNotFound) {
			uc.logger.Warn("CreateReservationRequest: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CreateReservationRequest: failed to read session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to read session: %v", ErrInternal, err)
	}

	// 3. Проверяем выбор
	if len(view.Selection) == 0 {
		uc.logger.Warn("CreateReservationRequest: session=%s has empty selection", req.SessionID)
		return nil, ErrEmptySelection
	}
	if len(view.Selection) > domain.MaxSelectedSlots {
		// Движок держит лимит сам; сюда попадаем только при его поломке
		uc.logger.Error("CreateReservationRequest: session=%s selection exceeds cap: %d", req.SessionID, len(view.Selection))
		return nil, ErrTooManySlots
	}

	// 4. Собираем доменную заявку из среза сессии
	slots := make([]domain.RequestedSlot, len(view.Selection))
	for i, sel := range view.Selection {
		slots[i] = domain.RequestedSlot{
			StartAt: sel.StartAt,
			EndAt:   sel.EndAt,
			Date:    sel.Date,
			Status:  domain.SlotStatus(sel.Status),
		}
	}

	request := &domain.ReservationRequest{
		ProviderID: view.ProviderID,
		UserID:     req.UserID,
		Source:     domain.SourceType(view.SourceType),
		Status:     domain.RequestStatusPending,
		Name:       strings.TrimSpace(req.Name),
		Contact:    strings.TrimSpace(req.Contact),
		Notes:      req.Notes,
		Slots:      slots,
	}

	// 5. Записываем заявку со слотами в сериализуемой транзакции
	var created *domain.ReservationRequest
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err = uc.requestRepo.Create(txCtx, request)
		return err
	})
	if err != nil {
		uc.logger.Error("CreateReservationRequest: failed to persist request for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to persist request: %v", ErrInternal, err)
	}

	// 6. Закрываем сессию: оверлей после отправки формы исчезает
	uc.selection.Close(ctx, req.SessionID)

	uc.logger.Info("CreateReservationRequest: request id=%d created for provider=%d, slots=%d",
		created.ID, created.ProviderID, len(created.Slots))

	return toResponse(created), nil
}

func toResponse(request *domain.ReservationRequest) *Response {
	slots := make([]RequestedSlot, len(request.Slots))
	for i, slot := range request.Slots {
		slots[i] = RequestedSlot{
			StartAt: slot.StartAt,
			EndAt:   slot.EndAt,
			Date:    slot.Date,
			Status:  string(slot.Status),
		}
	}

	return &Response{
		ID:         request.ID,
		ProviderID: request.ProviderID,
		UserID:     request.UserID,
		Source:     string(request.Source),
		Status:     string(request.Status),
		Name:       request.Name,
		Contact:    request.Contact,
		Notes:      request.Notes,
		Slots:      slots,
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  request.UpdatedAt,
	}
}
