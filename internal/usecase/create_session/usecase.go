package create_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	templateRepo "github.com/m04kA/SLB-ReservationService/internal/infra/storage/fallbacktmpl"
	providerClient "github.com/m04kA/SLB-ReservationService/internal/integrations/providerservice"
	"github.com/m04kA/SLB-ReservationService/internal/service/selection"
)

// UseCase use case для создания календарной сессии
type UseCase struct {
	templateRepo     TemplateRepository
	providerClient   ProviderServiceClient
	selectionService SelectionService
	defaults         EngineDefaults
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	providerClient ProviderServiceClient,
	selectionService SelectionService,
	defaults EngineDefaults,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo:     templateRepo,
		providerClient:   providerClient,
		selectionService: selectionService,
		defaults:         defaults,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания календарной сессии
// Недоступность каталога не блокирует открытие: сессия собирается
// на настройках движка по умолчанию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSession: provider=%d, raw_days=%d, default_start_at=%q",
		req.ProviderID, len(req.RawDays), req.DefaultStartAt)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Карточка провайдера (graceful degradation при недоступном каталоге)
	slotDuration := uc.defaults.SlotDurationMinutes
	fallbackEnabled := uc.defaults.FallbackEnabled
	defaultStartAt := req.DefaultStartAt

	provider, err := uc.providerClient.GetProviderWithGracefulDegradation(ctx, req.ProviderID)
	switch {
	case err == nil:
		if provider.SlotDurationMinutes > 0 {
			slotDuration = provider.SlotDurationMinutes
		}
		fallbackEnabled = provider.FallbackEnabled
		// Явно переданное время из карточки-сводки важнее каталога
		if defaultStartAt == "" {
			defaultStartAt = provider.DefaultStartAt
		}
	case errors.Is(err, providerClient.ErrProviderNotFound):
		uc.logger.Warn("CreateSession: provider id=%d not found", req.ProviderID)
		return nil, ErrProviderNotFound
	case errors.Is(err, providerClient.ErrServiceDegraded):
		uc.logger.Warn("CreateSession: directory degraded, using engine defaults for provider=%d", req.ProviderID)
	default:
		uc.logger.Error("CreateSession: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Fallback-шаблон провайдера (его отсутствие - не ошибка)
	var template *domain.FallbackTemplate
	template, err = uc.templateRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		if !errors.Is(err, templateRepo.ErrTemplateNotFound) {
			uc.logger.Error("CreateSession: failed to load template for provider=%d: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: failed to load fallback template: %v", ErrInternal, err)
		}
		template = nil
	}

	// 4. Собираем сессию: разрешение источника, нормализация, пагинация
	// и автовыбор происходят внутри конструктора
	sessionID := uuid.NewString()
	session := selection.NewSession(selection.SessionConfig{
		ID:                  sessionID,
		ProviderID:          req.ProviderID,
		SlotDurationMinutes: slotDuration,
		ChunkDays:           uc.defaults.ChunkDays,
		FallbackEnabled:     fallbackEnabled,
		Template:            template,
		DefaultStartAt:      defaultStartAt,
		FreshDays:           req.RawDays,
		Now:                 uc.timeProvider.Now,
	})

	// 5. Регистрируем сессию и отдаем начальное представление
	uc.selectionService.Register(session)

	view, err := uc.selectionService.GetCalendar(ctx, sessionID)
	if err != nil {
		uc.logger.Error("CreateSession: failed to read back session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to read back session: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSession: session=%s created for provider=%d, source=%s, pages=%d",
		sessionID, req.ProviderID, view.SourceType, view.PageCount)

	return &Response{
		SessionID: sessionID,
		View:      view,
	}, nil
}
