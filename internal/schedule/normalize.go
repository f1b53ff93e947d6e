// Package schedule содержит чистое ядро календаря доступности: нормализацию
// сырых данных, выбор источника, построение таймлайна и постраничную разбивку.
//
// Все функции детерминированы, не обращаются к текущему времени напрямую
// (момент "сейчас" передается аргументом) и не паникуют на некорректных
// входных данных - любой мусор деградирует локально.
package schedule

import (
	"regexp"
	"sort"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/jstime"
	"github.com/m04kA/SLB-ReservationService/pkg/types"
)

// DayLabelFormatter формирует отображаемую подпись дня по дате "YYYY-MM-DD"
type DayLabelFormatter func(date string) string

// DefaultDayLabel подпись вида "8/25 (Mon)"
// Некорректная дата возвращается как есть - колонка деградирует, но рендерится
func DefaultDayLabel(date string) string {
	parsed, err := jstime.ParseDate(date)
	if err != nil {
		return date
	}
	return parsed.Format("1/2 (Mon)")
}

// timeKeyPattern извлекает "HH:MM" из ISO-строки независимо от смещения
var timeKeyPattern = regexp.MustCompile(`([01]\d|2[0-3]):[0-5]\d`)

// ExtractTimeKey выводит каноничный timeKey из start_at
// Порядок деградации: regex -> срез фиксированных позиций ISO-строки -> "00:00"
// Никогда не возвращает ошибку: timeKey нужен только для матчинга ячеек сетки
func ExtractTimeKey(startAt string) types.TimeString {
	if match := timeKeyPattern.FindString(startAt); match != "" {
		return types.TimeString(match)
	}
	// Позиции 11:16 в "YYYY-MM-DDTHH:MM..." - попытка вытащить время из
	// строки, которую regex не распознал (например, часы вне диапазона)
	if len(startAt) >= 16 {
		if key, err := types.NewTimeStringFromString(startAt[11:16]); err == nil {
			return key
		}
	}
	return types.TimeString("00:00")
}

// NormalizeDays приводит сырые дни произвольного источника к каноничной форме
//
// Правила:
//   - label считается форматтером, isToday = флаг источника ИЛИ совпадение с today
//   - порядок слотов внутри дня сохраняется как есть (презентация матчит по
//     timeKey, а не по позиции)
//   - дни с нулем слотов сохраняются
//   - при дублировании даты остается первое вхождение
//   - результат отсортирован по дате по возрастанию
func NormalizeDays(raw []domain.RawDay, label DayLabelFormatter, today string) []domain.NormalizedDay {
	if label == nil {
		label = DefaultDayLabel
	}

	seen := make(map[string]struct{}, len(raw))
	days := make([]domain.NormalizedDay, 0, len(raw))

	for _, rawDay := range raw {
		if _, ok := seen[rawDay.Date]; ok {
			continue
		}
		seen[rawDay.Date] = struct{}{}

		slots := make([]domain.NormalizedSlot, 0, len(rawDay.Slots))
		for _, rawSlot := range rawDay.Slots {
			slots = append(slots, domain.NormalizedSlot{
				StartAt: rawSlot.StartAt,
				EndAt:   rawSlot.EndAt,
				Status:  rawSlot.Status,
				TimeKey: ExtractTimeKey(rawSlot.StartAt),
			})
		}

		days = append(days, domain.NormalizedDay{
			Date:    rawDay.Date,
			Label:   label(rawDay.Date),
			IsToday: rawDay.IsToday || rawDay.Date == today,
			Slots:   slots,
		})
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}
