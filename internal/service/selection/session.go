package selection

import (
	"sync"
	"time"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/internal/schedule"
	"github.com/m04kA/SLB-ReservationService/pkg/jstime"
)

// FormTab активная вкладка формы заявки
type FormTab string

const (
	TabSchedule FormTab = "schedule"
	TabInfo     FormTab = "info"
)

// IsValid возвращает true для известных вкладок
func (t FormTab) IsValid() bool {
	return t == TabSchedule || t == TabInfo
}

// SessionConfig параметры создания календарной сессии
type SessionConfig struct {
	ID                  string
	ProviderID          int64
	SlotDurationMinutes int
	ChunkDays           int
	FallbackEnabled     bool
	Template            *domain.FallbackTemplate
	DefaultStartAt      string
	FreshDays           []domain.RawDay
	LabelFor            schedule.DayLabelFormatter
	Now                 func() time.Time
}

// Session состояние одного открытого оверлея бронирования
//
// Вся производная структура (нормализованные дни, страницы, таймлайн,
// тег источника) пересчитывается заново при каждой замене входных данных,
// а не мутируется на месте. Команды сериализуются мьютексом: конкурентные
// HTTP-хендлеры не пересекаются внутри одной сессии
type Session struct {
	mu sync.Mutex

	id         string
	providerID int64

	slotDuration int
	chunkDays    int

	fallbackEnabled bool
	template        *domain.FallbackTemplate
	defaultStartAt  string
	labelFor        schedule.DayLabelFormatter
	now             func() time.Time

	freshDays []domain.RawDay

	// Производные структуры
	sourceType domain.SourceType
	days       []domain.NormalizedDay
	pages      [][]domain.NormalizedDay
	timeline   []schedule.TimelineTime

	// UI-состояние
	page         int
	selection    []domain.SelectedSlot
	formOpen     bool
	formTab      FormTab
	isRefreshing bool

	// Автовыбор по умолчанию срабатывает один раз за жизнь сессии
	autoSelected bool

	createdAt time.Time
	updatedAt time.Time
}

// NewSession создает сессию и выполняет первичный пересчет
// Инъекция default-слота в шаблон происходит однократно здесь, до синтеза,
// чтобы календарь не расходился с временем из карточки-сводки
func NewSession(cfg SessionConfig) *Session {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.SlotDurationMinutes <= 0 {
		cfg.SlotDurationMinutes = domain.DefaultSlotStepMinutes
	}
	if cfg.ChunkDays <= 0 {
		cfg.ChunkDays = domain.DefaultScheduleChunkDays
	}
	if cfg.LabelFor == nil {
		cfg.LabelFor = schedule.DefaultDayLabel
	}

	s := &Session{
		id:              cfg.ID,
		providerID:      cfg.ProviderID,
		slotDuration:    cfg.SlotDurationMinutes,
		chunkDays:       cfg.ChunkDays,
		fallbackEnabled: cfg.FallbackEnabled,
		template:        cloneTemplate(cfg.Template),
		defaultStartAt:  cfg.DefaultStartAt,
		labelFor:        cfg.LabelFor,
		now:             cfg.Now,
		freshDays:       cfg.FreshDays,
		formTab:         TabSchedule,
		createdAt:       cfg.Now(),
		updatedAt:       cfg.Now(),
	}

	schedule.InjectDefaultStartSlot(s.template, s.defaultStartAt, domain.DefaultInjectedDurationMinutes, s.now())
	s.recompute()
	s.autoDefaultSelect()

	return s
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string {
	return s.id
}

// ProviderID возвращает провайдера, к которому привязана сессия
func (s *Session) ProviderID() int64 {
	return s.providerID
}

// recompute пересобирает все производные структуры из текущих входных данных
// Вызывается под мьютексом
func (s *Session) recompute() {
	now := s.now()
	today := jstime.Today(now)

	resolved := schedule.ResolveSource(s.freshDays, s.template, s.fallbackEnabled, now, s.slotDuration)

	s.sourceType = resolved.Type
	s.days = schedule.NormalizeDays(resolved.Days, s.labelFor, today)
	s.pages = schedule.BuildSchedulePages(s.days, s.labelFor, today, s.chunkDays)
	s.timeline = schedule.BuildTimelineTimes(s.days, s.slotDuration)

	s.clampPage()
	s.dropVanishedSelection()
	s.updatedAt = now
}

// clampPage прижимает текущую страницу к последней валидной,
// если после обновления данных страниц стало меньше
func (s *Session) clampPage() {
	if len(s.pages) == 0 {
		s.page = 0
		return
	}
	if s.page >= len(s.pages) {
		s.page = len(s.pages) - 1
	}
	if s.page < 0 {
		s.page = 0
	}
}

// dropVanishedSelection убирает из выбора слоты, исчезнувшие из новых данных
// Остальные записи сохраняют порядок: обновление календаря не должно молча
// сбрасывать выбор пользователя
func (s *Session) dropVanishedSelection() {
	if len(s.selection) == 0 {
		return
	}

	kept := make([]domain.SelectedSlot, 0, len(s.selection))
	for _, sel := range s.selection {
		if _, ok := s.findSlot(sel.StartAt); ok {
			kept = append(kept, sel)
		}
	}
	s.selection = kept
}

// findSlot ищет слот по идентичности start_at среди всех нормализованных дней
func (s *Session) findSlot(startAt string) (slotOnDay, bool) {
	for _, day := range s.days {
		for _, slot := range day.Slots {
			if slot.StartAt == startAt {
				return slotOnDay{day: day, slot: slot}, true
			}
		}
	}
	return slotOnDay{}, false
}

type slotOnDay struct {
	day  domain.NormalizedDay
	slot domain.NormalizedSlot
}

// autoDefaultSelect однократный автовыбор при появлении данных:
// сначала точное совпадение с внешне заданным defaultStartAt, иначе первый
// выбираемый слот. Никогда не перетирает уже существующий выбор
func (s *Session) autoDefaultSelect() {
	if s.autoSelected || len(s.selection) > 0 {
		return
	}

	if s.defaultStartAt != "" {
		if found, ok := s.findSlot(s.defaultStartAt); ok && found.slot.IsSelectable() {
			s.selection = domain.AppendSelected(s.selection, toSelected(found))
			s.autoSelected = true
			return
		}
	}

	if found, ok := s.firstSelectable(); ok {
		s.selection = domain.AppendSelected(s.selection, toSelected(found))
		s.autoSelected = true
		return
	}

	// Данных еще нет - эффект сработает при их появлении
	if s.hasAnySlot() {
		s.autoSelected = true
	}
}

// firstSelectable первый не-blocked слот в порядке дат
func (s *Session) firstSelectable() (slotOnDay, bool) {
	for _, day := range s.days {
		for _, slot := range day.Slots {
			if slot.IsSelectable() {
				return slotOnDay{day: day, slot: slot}, true
			}
		}
	}
	return slotOnDay{}, false
}

func (s *Session) hasAnySlot() bool {
	for _, day := range s.days {
		if len(day.Slots) > 0 {
			return true
		}
	}
	return false
}

func toSelected(found slotOnDay) domain.SelectedSlot {
	return domain.SelectedSlot{
		StartAt: found.slot.StartAt,
		EndAt:   found.slot.EndAt,
		Date:    found.day.Date,
		Status:  found.slot.Status,
	}
}

// ToggleSlot переключает присутствие слота в выборе
//
// Единственная точка, где применяется лимит выбора: при переполнении
// вытесняется самая старая запись (FIFO), а не отклоняется новая.
// Blocked-слоты и неизвестные start_at игнорируются (no-op)
func (s *Session) ToggleSlot(startAt string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, ok := s.findSlot(startAt)
	if !ok || !found.slot.IsSelectable() {
		return
	}

	if domain.ContainsSelected(s.selection, startAt) {
		s.selection = domain.RemoveSelected(s.selection, startAt)
		return
	}
	s.selection = domain.AppendSelected(s.selection, toSelected(found))
}

// RemoveSlot безусловно убирает слот из выбора по идентичности start_at
func (s *Session) RemoveSlot(startAt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = domain.RemoveSelected(s.selection, startAt)
}

// EnsureSelection гарантирует непустой выбор перед открытием формы
// Существующий выбор возвращается без изменений (идемпотентность - намерение
// пользователя не перетирается); иначе выбирается первый не-blocked слот
func (s *Session) EnsureSelection() []domain.SelectedSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureSelectionLocked()
}

func (s *Session) ensureSelectionLocked() []domain.SelectedSlot {
	if len(s.selection) > 0 {
		return s.snapshotSelection()
	}
	if found, ok := s.firstSelectable(); ok {
		s.selection = domain.AppendSelected(s.selection, toSelected(found))
	}
	return s.snapshotSelection()
}

// OpenForm открывает форму заявки
//
// Сначала гарантируется выбор, затем страница календаря переводится на ту,
// где лежит дата первого выбранного слота - форма никогда не открывается
// на чужой неделе. Вкладка - schedule при наличии хоть одной доступности,
// иначе сразу info (выбирать нечего, переходим к контактам)
func (s *Session) OpenForm() {
	s.mu.Lock()
	defer s.mu.Unlock()

	selection := s.ensureSelectionLocked()

	if len(selection) > 0 {
		if page, ok := s.pageOfDate(selection[0].Date); ok {
			s.page = page
		}
	}

	if s.hasAnySlot() {
		s.formTab = TabSchedule
	} else {
		s.formTab = TabInfo
	}
	s.formOpen = true
}

// pageOfDate находит индекс страницы, содержащей дату
func (s *Session) pageOfDate(date string) (int, bool) {
	for i, page := range s.pages {
		for _, day := range page {
			if day.Date == date {
				return i, true
			}
		}
	}
	return 0, false
}

// CloseForm закрывает форму заявки (клик по фону и Escape эквивалентны)
func (s *Session) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formOpen = false
}

// SetFormTab переключает вкладку открытой формы
func (s *Session) SetFormTab(tab FormTab) error {
	if !tab.IsValid() {
		return ErrInvalidTab
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formTab = tab
	return nil
}

// SetPage переводит календарь на страницу page с прижатием к границам
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
	s.clampPage()
}

// BeginRefresh выставляет флаг обновления
// Флаг чисто отображательный: сам фетч выполняет вызывающая сторона
func (s *Session) BeginRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isRefreshing = true
}

// UpdateAvailability заменяет активный источник свежими данными
// Сбрасывает флаг обновления; выбор сохраняется, кроме слотов, исчезнувших
// из новых данных; текущая страница прижимается к новому количеству страниц
func (s *Session) UpdateAvailability(freshDays []domain.RawDay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.freshDays = freshDays
	s.isRefreshing = false
	s.recompute()
	s.autoDefaultSelect()
}

// Selection возвращает копию текущего выбора
func (s *Session) Selection() []domain.SelectedSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotSelection()
}

func (s *Session) snapshotSelection() []domain.SelectedSlot {
	out := make([]domain.SelectedSlot, len(s.selection))
	copy(out, s.selection)
	return out
}

// SourceType возвращает тег происхождения текущих данных
func (s *Session) SourceType() domain.SourceType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceType
}

// Snapshot согласованный срез состояния сессии для презентационного слоя
type Snapshot struct {
	ID           string
	ProviderID   int64
	SourceType   domain.SourceType
	Page         int
	PageCount    int
	Days         []domain.NormalizedDay
	Timeline     []schedule.TimelineTime
	Selection    []domain.SelectedSlot
	FormOpen     bool
	FormTab      FormTab
	IsRefreshing bool
}

// Snapshot возвращает текущую страницу дней, таймлайн, выбор и UI-состояние
// одним согласованным срезом
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pageDays []domain.NormalizedDay
	if s.page >= 0 && s.page < len(s.pages) {
		pageDays = s.pages[s.page]
	}

	return Snapshot{
		ID:           s.id,
		ProviderID:   s.providerID,
		SourceType:   s.sourceType,
		Page:         s.page,
		PageCount:    len(s.pages),
		Days:         pageDays,
		Timeline:     s.timeline,
		Selection:    s.snapshotSelection(),
		FormOpen:     s.formOpen,
		FormTab:      s.formTab,
		IsRefreshing: s.isRefreshing,
	}
}

// cloneTemplate глубокая копия шаблона: инъекция default-слота не должна
// трогать разделяемый экземпляр из хранилища
func cloneTemplate(tmpl *domain.FallbackTemplate) *domain.FallbackTemplate {
	if tmpl == nil {
		return &domain.FallbackTemplate{}
	}

	out := &domain.FallbackTemplate{
		ProviderID: tmpl.ProviderID,
		Days:       make([]domain.TemplateDay, len(tmpl.Days)),
	}
	for i, day := range tmpl.Days {
		slots := make([]domain.TemplateSlot, len(day.Slots))
		copy(slots, day.Slots)
		out.Days[i] = domain.TemplateDay{DayOffset: day.DayOffset, Slots: slots}
	}
	return out
}
