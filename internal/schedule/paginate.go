package schedule

import (
	"time"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/jstime"
)

// BuildSchedulePages режет последовательность нормализованных дней на страницы
// ровно по chunkSize дней (по умолчанию - неделя)
//
// Правила:
//   - пустой вход дает одну страницу из chunkSize пустых дней-скелетов,
//     начиная с today
//   - иначе страница 0 якорится на САМОЙ РАННЕЙ читаемой дате входа (не
//     обязательно today); пропуски в последовательности дат заполняются
//     скелетами
//   - дни с нечитаемой датой занимают колонки сразу за датированным
//     диапазоном: их колонка деградирует, но рендерится
//   - последняя страница никогда не бывает неполной
//
// Количество страниц считается от покрываемого диапазона дат, поэтому
// разреженный вход (дыры между датами) целиком попадает в страницы
func BuildSchedulePages(
	days []domain.NormalizedDay,
	label DayLabelFormatter,
	today string,
	chunkSize int,
) [][]domain.NormalizedDay {
	if chunkSize <= 0 {
		chunkSize = domain.DefaultScheduleChunkDays
	}
	if label == nil {
		label = DefaultDayLabel
	}

	anchor, spanDays, byDate, tail := indexDays(days, today)

	tailStart := spanDays - len(tail)
	if spanDays < chunkSize {
		spanDays = chunkSize
	}
	pageCount := (spanDays + chunkSize - 1) / chunkSize

	pages := make([][]domain.NormalizedDay, 0, pageCount)
	for page := 0; page < pageCount; page++ {
		pageDays := make([]domain.NormalizedDay, 0, chunkSize)
		for i := 0; i < chunkSize; i++ {
			offset := page*chunkSize + i
			date := jstime.FormatLocalDate(jstime.AddDays(anchor, offset))

			if day, ok := byDate[date]; ok {
				pageDays = append(pageDays, day)
				continue
			}
			if ti := offset - tailStart; ti >= 0 && ti < len(tail) {
				pageDays = append(pageDays, tail[ti])
				continue
			}
			pageDays = append(pageDays, skeletonDay(date, label, today))
		}
		pages = append(pages, pageDays)
	}

	return pages
}

// indexDays находит якорную дату, покрываемый диапазон в днях, индекс по дате
// и хвост дней с нечитаемой датой. Хвостовые дни не участвуют в якоре, но
// включаются в диапазон: им достаются колонки сразу за датированной частью
func indexDays(days []domain.NormalizedDay, today string) (anchor time.Time, spanDays int, byDate map[string]domain.NormalizedDay, tail []domain.NormalizedDay) {
	byDate = make(map[string]domain.NormalizedDay, len(days))

	var (
		first, last  time.Time
		haveParsable bool
	)

	for _, day := range days {
		if _, ok := byDate[day.Date]; ok {
			continue
		}
		byDate[day.Date] = day

		parsed, err := jstime.ParseDate(day.Date)
		if err != nil {
			tail = append(tail, day)
			continue
		}
		if !haveParsable || parsed.Before(first) {
			first = parsed
		}
		if !haveParsable || parsed.After(last) {
			last = parsed
		}
		haveParsable = true
	}

	if !haveParsable {
		// Пустой вход (или сплошной мусор) - якоримся на сегодня
		anchor, err := jstime.ParseDate(today)
		if err != nil {
			// Фиксированный якорь: текущее время здесь не трогаем,
			// выход должен быть детерминированным даже для мусора
			anchor = time.Date(1, time.January, 1, 0, 0, 0, 0, jstime.Zone())
		}
		return anchor, len(tail), byDate, tail
	}

	span := int(last.Sub(first).Hours()/24) + 1
	return first, span + len(tail), byDate, tail
}

// skeletonDay пустой день-заглушка для выравнивания страницы
func skeletonDay(date string, label DayLabelFormatter, today string) domain.NormalizedDay {
	return domain.NormalizedDay{
		Date:    date,
		Label:   label(date),
		IsToday: date == today,
		Slots:   []domain.NormalizedSlot{},
	}
}
