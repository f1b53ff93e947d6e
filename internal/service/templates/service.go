package templates

import (
	"context"
	"errors"
	"fmt"

	templateRepo "github.com/m04kA/SLB-ReservationService/internal/infra/storage/fallbacktmpl"
	"github.com/m04kA/SLB-ReservationService/internal/service/templates/models"
)

// Service сервис для работы с шаблонами fallback-расписаний
type Service struct {
	templateRepo TemplateRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(
	templateRepo TemplateRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		templateRepo: templateRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает шаблон провайдера
func (s *Service) Get(ctx context.Context, providerID int64) (*models.TemplateResponse, error) {
	s.logger.Info("Get: fetching template for provider=%d", providerID)

	tmpl, err := s.templateRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Get: template for provider=%d not found", providerID)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("Get: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTemplate(tmpl), nil
}

// Replace атомарно заменяет шаблон провайдера
// Пустой список дней удаляет шаблон целиком; delete и insert выполняются
// в одной транзакции
func (s *Service) Replace(ctx context.Context, req *models.ReplaceTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("Replace: replacing template for provider=%d, days=%d", req.ProviderID, len(req.Days))

	tmpl := req.ToDomainTemplate()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.templateRepo.ReplaceForProvider(ctx, tmpl)
	})
	if err != nil {
		if errors.Is(err, templateRepo.ErrInvalidSlot) {
			s.logger.Warn("Replace: invalid template for provider=%d: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Replace: transaction error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Replace - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: template for provider=%d replaced", req.ProviderID)
	return models.FromDomainTemplate(tmpl), nil
}
