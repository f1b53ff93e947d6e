package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/types"
)

func TestBuildTimelineTimes_EmptyInputFallbackWindow(t *testing.T) {
	ticks := BuildTimelineTimes(nil, 30)

	// 10:00-22:00 включительно с шагом 30 минут = 25 отметок
	require.Len(t, ticks, 25)
	assert.Equal(t, "10:00", ticks[0].Key.String())
	assert.Equal(t, "22:00", ticks[len(ticks)-1].Key.String())
}

func TestBuildTimelineTimes_SlotlessDaysFallbackWindow(t *testing.T) {
	days := []domain.NormalizedDay{
		{Date: "2026-09-01"},
		{Date: "2026-09-02"},
	}

	ticks := BuildTimelineTimes(days, 30)

	require.Len(t, ticks, 25)
	assert.Equal(t, "10:00", ticks[0].Key.String())
}

func TestBuildTimelineTimes_WidenedByOneStep(t *testing.T) {
	days := []domain.NormalizedDay{
		{Date: "2026-09-01", Slots: []domain.NormalizedSlot{
			normSlot("11:00"),
			normSlot("14:30"),
		}},
		{Date: "2026-09-02", Slots: []domain.NormalizedSlot{
			normSlot("12:00"),
		}},
	}

	ticks := BuildTimelineTimes(days, 30)

	// Расширение на шаг с каждой стороны: 10:30 ... 15:00
	require.NotEmpty(t, ticks)
	assert.Equal(t, "10:30", ticks[0].Key.String())
	assert.Equal(t, "15:00", ticks[len(ticks)-1].Key.String())
	require.Len(t, ticks, 10)
}

func TestBuildTimelineTimes_ClampedToDayBounds(t *testing.T) {
	days := []domain.NormalizedDay{
		{Date: "2026-09-01", Slots: []domain.NormalizedSlot{
			normSlot("00:15"),
			normSlot("23:45"),
		}},
	}

	ticks := BuildTimelineTimes(days, 30)

	// Расширение не выходит за границы суток; прижатие сохраняет фазу,
	// поэтому первая отметка - сам ранний слот
	assert.Equal(t, "00:15", ticks[0].Key.String())
	last := ticks[len(ticks)-1]
	lastMinutes, err := last.Key.Minutes()
	require.NoError(t, err)
	assert.Less(t, lastMinutes, 24*60)
	assert.Equal(t, "23:45", last.Key.String())
}

func TestBuildTimelineTimes_OffGridSlotsMatchRows(t *testing.T) {
	days := []domain.NormalizedDay{
		{Date: "2026-09-01", Slots: []domain.NormalizedSlot{
			normSlot("10:15"),
			normSlot("10:45"),
		}},
	}

	ticks := BuildTimelineTimes(days, 30)

	// Сетка якорится на фазе раннего слота: 09:45 ... 11:15
	require.Len(t, ticks, 4)
	assert.Equal(t, "09:45", ticks[0].Key.String())
	assert.Equal(t, "11:15", ticks[len(ticks)-1].Key.String())

	// У каждого слота есть своя строка
	keys := make(map[string]bool, len(ticks))
	for _, tick := range ticks {
		keys[tick.Key.String()] = true
	}
	assert.True(t, keys["10:15"])
	assert.True(t, keys["10:45"])
}

func TestBuildTimelineTimes_CustomStep(t *testing.T) {
	days := []domain.NormalizedDay{
		{Date: "2026-09-01", Slots: []domain.NormalizedSlot{
			normSlot("10:00"),
			normSlot("11:00"),
		}},
	}

	ticks := BuildTimelineTimes(days, 60)

	assert.Equal(t, "09:00", ticks[0].Key.String())
	assert.Equal(t, "12:00", ticks[len(ticks)-1].Key.String())
	assert.Len(t, ticks, 4)
}

func TestBuildTimelineTimes_UnreadableKeysSkipped(t *testing.T) {
	days := []domain.NormalizedDay{
		{Date: "2026-09-01", Slots: []domain.NormalizedSlot{
			{TimeKey: types.TimeString("garbage")},
		}},
	}

	ticks := BuildTimelineTimes(days, 30)

	// Единственный слот нечитаем - сетка падает в дефолтное окно
	require.Len(t, ticks, 25)
	assert.Equal(t, "10:00", ticks[0].Key.String())
}

func normSlot(key string) domain.NormalizedSlot {
	return domain.NormalizedSlot{
		StartAt: "2026-09-01T" + key + ":00+09:00",
		Status:  domain.SlotStatusOpen,
		TimeKey: types.TimeString(key),
	}
}
