package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/jstime"
)

// фиксированное "сейчас": 2026-09-01 12:00 JST
var sessNow = time.Date(2026, 9, 1, 12, 0, 0, 0, jstime.Zone())

func fixedNow() time.Time {
	return sessNow
}

func rawOpen(start, end string) domain.RawSlot {
	return domain.RawSlot{StartAt: start, EndAt: end, Status: domain.SlotStatusOpen}
}

// два дня с разрывом: 2026-09-01 и 2026-09-10 попадают на разные страницы
// при размере страницы 7
func sessionFreshDays() []domain.RawDay {
	return []domain.RawDay{
		{
			Date: "2026-09-01",
			Slots: []domain.RawSlot{
				rawOpen("2026-09-01T10:00:00+09:00", "2026-09-01T11:00:00+09:00"),
				rawOpen("2026-09-01T11:00:00+09:00", "2026-09-01T12:00:00+09:00"),
				{StartAt: "2026-09-01T12:00:00+09:00", EndAt: "2026-09-01T13:00:00+09:00", Status: domain.SlotStatusBlocked},
				rawOpen("2026-09-01T13:00:00+09:00", "2026-09-01T14:00:00+09:00"),
			},
		},
		{
			Date: "2026-09-10",
			Slots: []domain.RawSlot{
				rawOpen("2026-09-10T10:00:00+09:00", "2026-09-10T11:00:00+09:00"),
			},
		},
	}
}

func newAPISession(defaultStartAt string) *Session {
	return NewSession(SessionConfig{
		ID:             "sess-1",
		ProviderID:     7,
		DefaultStartAt: defaultStartAt,
		FreshDays:      sessionFreshDays(),
		Now:            fixedNow,
	})
}

func TestNewSession_AutoSelectsFirstSelectable(t *testing.T) {
	s := newAPISession("")

	sel := s.Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, "2026-09-01T10:00:00+09:00", sel[0].StartAt)
	assert.Equal(t, "2026-09-01", sel[0].Date)
	assert.Equal(t, domain.SourceAPI, s.SourceType())
}

func TestNewSession_AutoSelectPrefersDefaultStartAt(t *testing.T) {
	s := newAPISession("2026-09-01T11:00:00+09:00")

	sel := s.Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, "2026-09-01T11:00:00+09:00", sel[0].StartAt)
}

func TestSession_ToggleSlot(t *testing.T) {
	s := newAPISession("")

	// Повторный клик по уже выбранному слоту снимает выбор
	s.ToggleSlot("2026-09-01T10:00:00+09:00")
	assert.Empty(t, s.Selection())

	s.ToggleSlot("2026-09-01T11:00:00+09:00")
	sel := s.Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, "2026-09-01T11:00:00+09:00", sel[0].StartAt)

	// Blocked и неизвестные start_at игнорируются
	s.ToggleSlot("2026-09-01T12:00:00+09:00")
	s.ToggleSlot("2026-09-01T23:45:00+09:00")
	assert.Len(t, s.Selection(), 1)
}

func TestSession_SelectionCapEvictsOldest(t *testing.T) {
	s := newAPISession("")

	// Автовыбор уже держит 10:00; добираем до лимита и выходим за него
	s.ToggleSlot("2026-09-01T11:00:00+09:00")
	s.ToggleSlot("2026-09-01T13:00:00+09:00")
	s.ToggleSlot("2026-09-10T10:00:00+09:00")

	sel := s.Selection()
	require.Len(t, sel, domain.MaxSelectedSlots)
	assert.Equal(t, "2026-09-01T11:00:00+09:00", sel[0].StartAt)
	assert.Equal(t, "2026-09-01T13:00:00+09:00", sel[1].StartAt)
	assert.Equal(t, "2026-09-10T10:00:00+09:00", sel[2].StartAt)
}

func TestSession_RemoveSlot(t *testing.T) {
	s := newAPISession("")

	s.RemoveSlot("2026-09-01T10:00:00+09:00")
	assert.Empty(t, s.Selection())

	// Удаление отсутствующего слота ничего не ломает
	s.RemoveSlot("2026-09-01T10:00:00+09:00")
	assert.Empty(t, s.Selection())
}

func TestSession_EnsureSelection_Idempotent(t *testing.T) {
	s := newAPISession("")

	s.ToggleSlot("2026-09-01T10:00:00+09:00")
	s.ToggleSlot("2026-09-01T13:00:00+09:00")

	sel := s.EnsureSelection()
	require.Len(t, sel, 1)
	assert.Equal(t, "2026-09-01T13:00:00+09:00", sel[0].StartAt)

	// Пустой выбор добивается первым доступным слотом
	s.RemoveSlot("2026-09-01T13:00:00+09:00")
	sel = s.EnsureSelection()
	require.Len(t, sel, 1)
	assert.Equal(t, "2026-09-01T10:00:00+09:00", sel[0].StartAt)
}

func TestSession_OpenForm_NavigatesToSelectedPage(t *testing.T) {
	s := newAPISession("")

	s.RemoveSlot("2026-09-01T10:00:00+09:00")
	s.ToggleSlot("2026-09-10T10:00:00+09:00")
	s.OpenForm()

	snap := s.Snapshot()
	assert.True(t, snap.FormOpen)
	assert.Equal(t, TabSchedule, snap.FormTab)
	assert.Equal(t, 1, snap.Page)

	// Выбранная дата лежит на открывшейся странице
	var found bool
	for _, day := range snap.Days {
		if day.Date == "2026-09-10" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSession_OpenForm_InfoTabWhenNothingToPick(t *testing.T) {
	s := NewSession(SessionConfig{
		ID:         "sess-empty",
		ProviderID: 7,
		Now:        fixedNow,
	})

	require.Equal(t, domain.SourceNone, s.SourceType())

	s.OpenForm()

	snap := s.Snapshot()
	assert.True(t, snap.FormOpen)
	assert.Equal(t, TabInfo, snap.FormTab)
	assert.Empty(t, snap.Selection)

	s.CloseForm()
	assert.False(t, s.Snapshot().FormOpen)
}

func TestSession_SetFormTab(t *testing.T) {
	s := newAPISession("")

	require.NoError(t, s.SetFormTab(TabInfo))
	assert.Equal(t, TabInfo, s.Snapshot().FormTab)

	err := s.SetFormTab(FormTab("contacts"))
	assert.ErrorIs(t, err, ErrInvalidTab)
	assert.Equal(t, TabInfo, s.Snapshot().FormTab)
}

func TestSession_SetPage_ClampsToBounds(t *testing.T) {
	s := newAPISession("")

	require.Equal(t, 2, s.Snapshot().PageCount)

	s.SetPage(99)
	assert.Equal(t, 1, s.Snapshot().Page)

	s.SetPage(-5)
	assert.Equal(t, 0, s.Snapshot().Page)
}

func TestSession_UpdateAvailability_KeepsSurvivingSelection(t *testing.T) {
	s := newAPISession("")

	s.ToggleSlot("2026-09-01T11:00:00+09:00")
	s.SetPage(1)
	s.BeginRefresh()
	assert.True(t, s.Snapshot().IsRefreshing)

	// В новых данных выживает только 11:00, второй страницы больше нет
	s.UpdateAvailability([]domain.RawDay{
		{
			Date: "2026-09-01",
			Slots: []domain.RawSlot{
				rawOpen("2026-09-01T11:00:00+09:00", "2026-09-01T12:00:00+09:00"),
			},
		},
	})

	snap := s.Snapshot()
	assert.False(t, snap.IsRefreshing)
	assert.Equal(t, 1, snap.PageCount)
	assert.Equal(t, 0, snap.Page)
	require.Len(t, snap.Selection, 1)
	assert.Equal(t, "2026-09-01T11:00:00+09:00", snap.Selection[0].StartAt)
}

func TestSession_UpdateAvailability_FallsBackToTemplate(t *testing.T) {
	s := NewSession(SessionConfig{
		ID:              "sess-fb",
		ProviderID:      7,
		FallbackEnabled: true,
		Template: &domain.FallbackTemplate{
			ProviderID: 7,
			Days: []domain.TemplateDay{
				{DayOffset: 1, Slots: []domain.TemplateSlot{
					{Hour: 10, Minute: 0, DurationMinutes: 60, Status: domain.SlotStatusOpen},
				}},
			},
		},
		FreshDays: sessionFreshDays(),
		Now:       fixedNow,
	})

	require.Equal(t, domain.SourceAPI, s.SourceType())

	s.UpdateAvailability(nil)

	assert.Equal(t, domain.SourceFallback, s.SourceType())
	snap := s.Snapshot()
	require.NotEmpty(t, snap.Days)
	assert.Equal(t, "2026-09-02", snap.Days[0].Date)
	require.Len(t, snap.Days[0].Slots, 1)
	assert.Equal(t, "2026-09-02T10:00:00+09:00", snap.Days[0].Slots[0].StartAt)
}

func TestSession_AutoSelectFiresOnceAcrossUpdates(t *testing.T) {
	s := NewSession(SessionConfig{
		ID:         "sess-late",
		ProviderID: 7,
		Now:        fixedNow,
	})

	require.Empty(t, s.Selection())

	// Данные пришли позже создания сессии - автовыбор срабатывает на них
	s.UpdateAvailability(sessionFreshDays())
	sel := s.Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, "2026-09-01T10:00:00+09:00", sel[0].StartAt)

	// Осознанно снятый выбор повторное обновление не восстанавливает
	s.RemoveSlot(sel[0].StartAt)
	s.UpdateAvailability(sessionFreshDays())
	assert.Empty(t, s.Selection())
}

func TestSession_InjectedDefaultSlotReachesFallbackCalendar(t *testing.T) {
	tmpl := &domain.FallbackTemplate{ProviderID: 7}

	s := NewSession(SessionConfig{
		ID:              "sess-inject",
		ProviderID:      7,
		FallbackEnabled: true,
		Template:        tmpl,
		DefaultStartAt:  "2026-09-03T15:00:00+09:00",
		Now:             fixedNow,
	})

	assert.Equal(t, domain.SourceFallback, s.SourceType())

	sel := s.Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, "2026-09-03T15:00:00+09:00", sel[0].StartAt)

	// Инъекция работает над копией: разделяемый шаблон не тронут
	assert.Empty(t, tmpl.Days)
}
