package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/jstime"
)

// фиксированное "сейчас": 2026-09-01 12:00 JST
var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, jstime.Zone())

func TestResolveSource_Precedence(t *testing.T) {
	fresh := []domain.RawDay{
		{Date: "2026-09-01", Slots: []domain.RawSlot{openSlot("2026-09-01T10:00:00+09:00")}},
	}
	tmpl := &domain.FallbackTemplate{
		ProviderID: 7,
		Days: []domain.TemplateDay{
			{DayOffset: 0, Slots: []domain.TemplateSlot{{Hour: 10, Minute: 0, DurationMinutes: 60, Status: domain.SlotStatusOpen}}},
		},
	}

	tests := []struct {
		name            string
		fresh           []domain.RawDay
		tmpl            *domain.FallbackTemplate
		fallbackEnabled bool
		wantType        domain.SourceType
	}{
		{
			name:            "fresh data wins over everything",
			fresh:           fresh,
			tmpl:            tmpl,
			fallbackEnabled: true,
			wantType:        domain.SourceAPI,
		},
		{
			name:            "fallback when no fresh data and flag enabled",
			fresh:           nil,
			tmpl:            tmpl,
			fallbackEnabled: true,
			wantType:        domain.SourceFallback,
		},
		{
			name:            "flag disabled blocks fallback",
			fresh:           nil,
			tmpl:            tmpl,
			fallbackEnabled: false,
			wantType:        domain.SourceNone,
		},
		{
			name:            "no template means none",
			fresh:           nil,
			tmpl:            nil,
			fallbackEnabled: true,
			wantType:        domain.SourceNone,
		},
		{
			// Непустой список дней без единого слота не считается данными API
			name:            "slotless fresh data falls through",
			fresh:           []domain.RawDay{{Date: "2026-09-01"}, {Date: "2026-09-02"}},
			tmpl:            tmpl,
			fallbackEnabled: true,
			wantType:        domain.SourceFallback,
		},
		{
			name:            "slotless fresh data and no fallback",
			fresh:           []domain.RawDay{{Date: "2026-09-01"}},
			tmpl:            nil,
			fallbackEnabled: true,
			wantType:        domain.SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveSource(tt.fresh, tt.tmpl, tt.fallbackEnabled, testNow, 30)
			assert.Equal(t, tt.wantType, resolved.Type)
			if tt.wantType == domain.SourceNone {
				assert.Empty(t, resolved.Days)
			}
		})
	}
}

func TestSynthesizeFallbackDays_ShapeMatchesAPIData(t *testing.T) {
	tmpl := &domain.FallbackTemplate{
		ProviderID: 7,
		Days: []domain.TemplateDay{
			{DayOffset: 0, Slots: []domain.TemplateSlot{
				{Hour: 10, Minute: 30, DurationMinutes: 60, Status: domain.SlotStatusOpen},
			}},
			{DayOffset: 2, Slots: []domain.TemplateSlot{
				{Hour: 18, Minute: 0, DurationMinutes: 0, Status: domain.SlotStatusTentative},
			}},
		},
	}

	days := SynthesizeFallbackDays(tmpl, testNow, 45)

	require.Len(t, days, 2)

	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.True(t, days[0].IsToday)
	require.Len(t, days[0].Slots, 1)
	assert.Equal(t, "2026-09-01T10:30:00+09:00", days[0].Slots[0].StartAt)
	assert.Equal(t, "2026-09-01T11:30:00+09:00", days[0].Slots[0].EndAt)
	assert.Equal(t, domain.SlotStatusOpen, days[0].Slots[0].Status)

	// Нулевая длительность шаблона деградирует до переданного дефолта
	assert.Equal(t, "2026-09-03", days[1].Date)
	assert.False(t, days[1].IsToday)
	assert.Equal(t, "2026-09-03T18:00:00+09:00", days[1].Slots[0].StartAt)
	assert.Equal(t, "2026-09-03T18:45:00+09:00", days[1].Slots[0].EndAt)
}

func TestInjectDefaultStartSlot_AddsWithoutTouchingExisting(t *testing.T) {
	tmpl := &domain.FallbackTemplate{
		ProviderID: 7,
		Days: []domain.TemplateDay{
			{DayOffset: 0, Slots: []domain.TemplateSlot{
				{Hour: 10, Minute: 0, DurationMinutes: 60, Status: domain.SlotStatusOpen},
			}},
		},
	}

	changed := InjectDefaultStartSlot(tmpl, "2026-09-01T09:00:00+09:00", 90, testNow)

	require.True(t, changed)
	day, ok := tmpl.DayAt(0)
	require.True(t, ok)
	require.Len(t, day.Slots, 2)

	// Новый слот встает по времени перед существующим, 10:00 не тронут
	assert.Equal(t, 9, day.Slots[0].Hour)
	assert.Equal(t, 90, day.Slots[0].DurationMinutes)
	assert.Equal(t, domain.SlotStatusOpen, day.Slots[0].Status)
	assert.Equal(t, 10, day.Slots[1].Hour)
	assert.Equal(t, 60, day.Slots[1].DurationMinutes)

	// Повторная инъекция того же момента ничего не дублирует
	changed = InjectDefaultStartSlot(tmpl, "2026-09-01T09:00:00+09:00", 90, testNow)
	assert.False(t, changed)
	day, _ = tmpl.DayAt(0)
	assert.Len(t, day.Slots, 2)
}

func TestInjectDefaultStartSlot_CreatesDayWithinBoundedWindow(t *testing.T) {
	tmpl := &domain.FallbackTemplate{
		ProviderID: 7,
		Days: []domain.TemplateDay{
			{DayOffset: 0, Slots: []domain.TemplateSlot{
				{Hour: 10, Minute: 0, DurationMinutes: 60, Status: domain.SlotStatusOpen},
			}},
		},
	}

	// 10 дней вперед - вне базового шаблона, но внутри окна 0-13
	changed := InjectDefaultStartSlot(tmpl, "2026-09-11T14:00:00+09:00", 90, testNow)

	require.True(t, changed)
	require.Len(t, tmpl.Days, 2)
	day, ok := tmpl.DayAt(10)
	require.True(t, ok)
	require.Len(t, day.Slots, 1)
	assert.Equal(t, 14, day.Slots[0].Hour)
	assert.Equal(t, 0, day.Slots[0].Minute)
}

func TestInjectDefaultStartSlot_RejectsOutsideWindowAndGarbage(t *testing.T) {
	tmpl := &domain.FallbackTemplate{ProviderID: 7}

	// 20 дней вперед - за пределами окна инъекции
	assert.False(t, InjectDefaultStartSlot(tmpl, "2026-09-21T14:00:00+09:00", 90, testNow))
	// Прошлое тоже вне окна
	assert.False(t, InjectDefaultStartSlot(tmpl, "2026-08-20T14:00:00+09:00", 90, testNow))
	// Мусор игнорируется
	assert.False(t, InjectDefaultStartSlot(tmpl, "not-a-timestamp", 90, testNow))
	assert.False(t, InjectDefaultStartSlot(tmpl, "", 90, testNow))

	assert.Empty(t, tmpl.Days)
}

func TestInjectDefaultStartSlot_NormalizesOffsetAcrossTimezones(t *testing.T) {
	tmpl := &domain.FallbackTemplate{ProviderID: 7}

	// 2026-09-01T23:30:00Z == 2026-09-02T08:30 JST: сутки считаются по JST
	changed := InjectDefaultStartSlot(tmpl, "2026-09-01T23:30:00Z", 90, testNow)

	require.True(t, changed)
	day, ok := tmpl.DayAt(1)
	require.True(t, ok)
	assert.Equal(t, 8, day.Slots[0].Hour)
	assert.Equal(t, 30, day.Slots[0].Minute)
}
