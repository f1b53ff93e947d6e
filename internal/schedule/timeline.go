package schedule

import (
	"sort"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/types"
)

// TimelineTime одна строка/колонка сетки времени
// Key совпадает с timeKey слотов и используется для матчинга ячеек
type TimelineTime struct {
	Key   types.TimeString
	Label string
}

// BuildTimelineTimes строит общий набор временных отметок сетки
//
// Отметки покрывают объединение времен начала всех слотов, расширенное на один
// шаг с каждой стороны и ограниченное сутками. Сетка якорится на фазе самого
// раннего слота (earliest - step), а не на полуночи: слоты на :15/:45 при шаге
// 30 должны совпадать со строками. Если слотов нет нигде - возвращается
// фиксированное окно 10:00-22:00, чтобы сетка никогда не схлопывалась в пустоту
func BuildTimelineTimes(days []domain.NormalizedDay, stepMinutes int) []TimelineTime {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}

	minutes := collectStartMinutes(days)
	if len(minutes) == 0 {
		return emitTicks(domain.DefaultTimelineStartMinutes, domain.DefaultTimelineEndMinutes, stepMinutes)
	}

	sort.Ints(minutes)

	from := minutes[0] - stepMinutes
	to := minutes[len(minutes)-1] + stepMinutes

	// Прижатие к началу суток сохраняет фазу: первой отметкой становится сам
	// ранний слот, а не полночь
	if from < 0 {
		from += stepMinutes
	}
	if to >= 24*60 {
		to = 24*60 - 1
	}

	return emitTicks(from, to, stepMinutes)
}

// collectStartMinutes собирает множество минут-от-полуночи начала слотов
// Слоты с нечитаемым timeKey пропускаются, а не валят построение сетки
func collectStartMinutes(days []domain.NormalizedDay) []int {
	seen := make(map[int]struct{})
	for _, day := range days {
		for _, slot := range day.Slots {
			m, err := slot.TimeKey.Minutes()
			if err != nil {
				continue
			}
			seen[m] = struct{}{}
		}
	}

	minutes := make([]int, 0, len(seen))
	for m := range seen {
		minutes = append(minutes, m)
	}
	return minutes
}

// emitTicks генерирует отметки от from до to включительно с шагом step
func emitTicks(from, to, step int) []TimelineTime {
	ticks := make([]TimelineTime, 0, (to-from)/step+1)
	for m := from; m <= to && m < 24*60; m += step {
		key, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		ticks = append(ticks, TimelineTime{Key: key, Label: key.String()})
	}
	return ticks
}
