package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/jstime"
)

// ResolvedSource результат выбора источника данных доступности
// Тег Type обязан пересчитываться при каждой замене данных, чтобы презентация
// могла предупредить пользователя о демо-данных
type ResolvedSource struct {
	Type domain.SourceType
	Days []domain.RawDay
}

// ResolveSource выбирает источник в строгом порядке приоритета:
//
//  1. свежие данные API, если в них есть хотя бы один слот
//  2. fallback-шаблон оператора, если включен фичефлаг и шаблон не пуст
//  3. пусто (none)
//
// Приоритет всегда у реальных данных: fallback существует только чтобы UI не
// был пустым на демо и у провайдеров без фида
func ResolveSource(
	fresh []domain.RawDay,
	tmpl *domain.FallbackTemplate,
	fallbackEnabled bool,
	now time.Time,
	defaultDurationMinutes int,
) ResolvedSource {
	if hasAnySlot(fresh) {
		return ResolvedSource{Type: domain.SourceAPI, Days: fresh}
	}

	if fallbackEnabled && !tmpl.IsEmpty() {
		return ResolvedSource{
			Type: domain.SourceFallback,
			Days: SynthesizeFallbackDays(tmpl, now, defaultDurationMinutes),
		}
	}

	return ResolvedSource{Type: domain.SourceNone, Days: []domain.RawDay{}}
}

// hasAnySlot проверяет, что хотя бы один день содержит хотя бы один слот
// Непустой список дней без единого слота НЕ считается данными API
func hasAnySlot(days []domain.RawDay) bool {
	for _, day := range days {
		if len(day.Slots) > 0 {
			return true
		}
	}
	return false
}

// SynthesizeFallbackDays разворачивает шаблон оператора в RawDay, неотличимые
// по форме от данных API: day_offset ложится на today + offset, слоты получают
// ISO-временные метки с фиксированным смещением +09:00
func SynthesizeFallbackDays(tmpl *domain.FallbackTemplate, now time.Time, defaultDurationMinutes int) []domain.RawDay {
	if tmpl.IsEmpty() {
		return []domain.RawDay{}
	}
	if defaultDurationMinutes <= 0 {
		defaultDurationMinutes = domain.DefaultSlotStepMinutes
	}

	days := make([]domain.RawDay, 0, len(tmpl.Days))
	for _, tmplDay := range tmpl.Days {
		date := jstime.AddDays(now, tmplDay.DayOffset)

		slots := make([]domain.RawSlot, 0, len(tmplDay.Slots))
		for _, tmplSlot := range tmplDay.Slots {
			duration := tmplSlot.DurationMinutes
			if duration <= 0 {
				duration = defaultDurationMinutes
			}

			start := jstime.Compose(date, tmplSlot.Hour, tmplSlot.Minute)
			slots = append(slots, domain.RawSlot{
				StartAt: jstime.ToISOWithOffset(start),
				EndAt:   jstime.ToISOWithOffset(start.Add(time.Duration(duration) * time.Minute)),
				Status:  tmplSlot.Status,
			})
		}

		days = append(days, domain.RawDay{
			Date:    jstime.FormatLocalDate(date),
			IsToday: tmplDay.DayOffset == 0,
			Slots:   slots,
		})
	}

	return days
}

// InjectDefaultStartSlot гарантирует присутствие внешне заданного момента
// defaultStartAt в шаблоне до синтеза, чтобы интерактивный календарь никогда
// не расходился с временем, уже показанным пользователю в карточке-сводке
//
// Правила:
//   - некорректный defaultStartAt игнорируется (no-op)
//   - дедупликация по точному совпадению (hour, minute) внутри дня
//   - новый день создается только для offset в пределах
//     [MinInjectionOffsetDays, MaxInjectionOffsetDays]
//   - слоты дня пересортировываются по времени после вставки
//
// Возвращает true, если шаблон был изменен
func InjectDefaultStartSlot(tmpl *domain.FallbackTemplate, defaultStartAt string, durationMinutes int, now time.Time) bool {
	if tmpl == nil || defaultStartAt == "" {
		return false
	}

	start, err := time.Parse(time.RFC3339, defaultStartAt)
	if err != nil {
		return false
	}

	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultInjectedDurationMinutes
	}

	local := start.In(jstime.Zone())
	offset := dayOffset(now, start)

	slot := domain.TemplateSlot{
		Hour:            local.Hour(),
		Minute:          local.Minute(),
		DurationMinutes: durationMinutes,
		Status:          domain.SlotStatusOpen,
	}

	if day, ok := tmpl.DayAt(offset); ok {
		if day.HasSlotAt(slot.Hour, slot.Minute) {
			return false
		}
		day.Slots = append(day.Slots, slot)
		day.SortSlots()
		return true
	}

	if offset < domain.MinInjectionOffsetDays || offset > domain.MaxInjectionOffsetDays {
		return false
	}

	tmpl.Days = append(tmpl.Days, domain.TemplateDay{
		DayOffset: offset,
		Slots:     []domain.TemplateSlot{slot},
	})
	sortTemplateDays(tmpl)
	return true
}

// dayOffset количество календарных суток JST между now и t
func dayOffset(now, t time.Time) int {
	from := jstime.StartOfDay(now)
	to := jstime.StartOfDay(t)
	return int(to.Sub(from).Hours() / 24)
}

func sortTemplateDays(tmpl *domain.FallbackTemplate) {
	sort.SliceStable(tmpl.Days, func(i, j int) bool {
		return tmpl.Days[i].DayOffset < tmpl.Days[j].DayOffset
	})
}
