package selection

import (
	"context"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/internal/service/selection/models"
)

// Service сервис управления состоянием выбора слотов
// Владеет командами над живыми сессиями; создание сессий - отдельный usecase
type Service struct {
	store  SessionStore
	logger Logger
}

// NewService создает новый экземпляр сервиса выбора
func NewService(store SessionStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Register кладет созданную сессию в хранилище
func (s *Service) Register(session *Session) {
	s.store.Put(session.ID(), session)
}

// session достает живую сессию или возвращает ErrSessionNotFound
func (s *Service) session(sessionID string) (*Session, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// GetCalendar возвращает текущее представление календаря сессии
func (s *Service) GetCalendar(_ context.Context, sessionID string) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("GetCalendar: session=%s not found", sessionID)
		return nil, err
	}
	return viewFromSnapshot(session.Snapshot()), nil
}

// ToggleSlot переключает слот в выборе и возвращает обновленное представление
func (s *Service) ToggleSlot(_ context.Context, sessionID, startAt string) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("ToggleSlot: session=%s not found", sessionID)
		return nil, err
	}

	session.ToggleSlot(startAt)

	snapshot := session.Snapshot()
	s.logger.Info("ToggleSlot: session=%s, start_at=%s, selected=%d",
		sessionID, startAt, len(snapshot.Selection))
	return viewFromSnapshot(snapshot), nil
}

// RemoveSlot убирает слот из выбора по start_at
func (s *Service) RemoveSlot(_ context.Context, sessionID, startAt string) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("RemoveSlot: session=%s not found", sessionID)
		return nil, err
	}

	session.RemoveSlot(startAt)
	s.logger.Info("RemoveSlot: session=%s, start_at=%s", sessionID, startAt)
	return viewFromSnapshot(session.Snapshot()), nil
}

// EnsureSelection гарантирует непустой выбор (если есть что выбирать)
func (s *Service) EnsureSelection(_ context.Context, sessionID string) ([]domain.SelectedSlot, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("EnsureSelection: session=%s not found", sessionID)
		return nil, err
	}
	return session.EnsureSelection(), nil
}

// OpenForm открывает форму заявки с переходом на страницу выбранного слота
func (s *Service) OpenForm(_ context.Context, sessionID string) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("OpenForm: session=%s not found", sessionID)
		return nil, err
	}

	session.OpenForm()

	snapshot := session.Snapshot()
	s.logger.Info("OpenForm: session=%s, page=%d, tab=%s", sessionID, snapshot.Page, snapshot.FormTab)
	return viewFromSnapshot(snapshot), nil
}

// CloseForm закрывает форму заявки
func (s *Service) CloseForm(_ context.Context, sessionID string) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("CloseForm: session=%s not found", sessionID)
		return nil, err
	}

	session.CloseForm()
	return viewFromSnapshot(session.Snapshot()), nil
}

// SetFormTab переключает вкладку формы
func (s *Service) SetFormTab(_ context.Context, sessionID string, tab string) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("SetFormTab: session=%s not found", sessionID)
		return nil, err
	}

	if err := session.SetFormTab(FormTab(tab)); err != nil {
		s.logger.Warn("SetFormTab: session=%s, invalid tab=%q", sessionID, tab)
		return nil, err
	}
	return viewFromSnapshot(session.Snapshot()), nil
}

// SetPage переводит календарь на указанную страницу (с прижатием к границам)
func (s *Service) SetPage(_ context.Context, sessionID string, page int) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("SetPage: session=%s not found", sessionID)
		return nil, err
	}

	session.SetPage(page)
	return viewFromSnapshot(session.Snapshot()), nil
}

// BeginRefresh помечает сессию как обновляющуюся (отображательный флаг)
func (s *Service) BeginRefresh(_ context.Context, sessionID string) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("BeginRefresh: session=%s not found", sessionID)
		return nil, err
	}

	session.BeginRefresh()
	return viewFromSnapshot(session.Snapshot()), nil
}

// UpdateAvailability заменяет данные доступности сессии свежим результатом
func (s *Service) UpdateAvailability(_ context.Context, sessionID string, freshDays []domain.RawDay) (*models.CalendarView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		s.logger.Warn("UpdateAvailability: session=%s not found", sessionID)
		return nil, err
	}

	session.UpdateAvailability(freshDays)

	snapshot := session.Snapshot()
	s.logger.Info("UpdateAvailability: session=%s, source=%s, pages=%d, selected=%d",
		sessionID, snapshot.SourceType, snapshot.PageCount, len(snapshot.Selection))
	return viewFromSnapshot(snapshot), nil
}

// Close удаляет сессию из хранилища (закрытие оверлея)
func (s *Service) Close(_ context.Context, sessionID string) {
	s.store.Delete(sessionID)
	s.logger.Info("Close: session=%s removed", sessionID)
}
