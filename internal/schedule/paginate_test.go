package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
)

func TestBuildSchedulePages_EmptyInputSynthesizesWeekFromToday(t *testing.T) {
	pages := BuildSchedulePages(nil, DefaultDayLabel, "2026-09-01", 7)

	require.Len(t, pages, 1)
	require.Len(t, pages[0], 7)
	assert.Equal(t, "2026-09-01", pages[0][0].Date)
	assert.Equal(t, "2026-09-07", pages[0][6].Date)
	assert.True(t, pages[0][0].IsToday)
	for _, day := range pages[0] {
		assert.Empty(t, day.Slots)
		assert.NotEmpty(t, day.Label)
	}
}

func TestBuildSchedulePages_AnchorsAtEarliestDate(t *testing.T) {
	days := NormalizeDays([]domain.RawDay{
		{Date: "2026-09-05", Slots: []domain.RawSlot{openSlot("2026-09-05T10:00:00+09:00")}},
		{Date: "2026-09-03"},
	}, nil, "2026-09-01")

	pages := BuildSchedulePages(days, nil, "2026-09-01", 7)

	require.Len(t, pages, 1)
	require.Len(t, pages[0], 7)
	// Якорь - самая ранняя дата входа, не today
	assert.Equal(t, "2026-09-03", pages[0][0].Date)
	assert.Equal(t, "2026-09-09", pages[0][6].Date)
	// Реальные дни на своих местах, дыры заполнены скелетами
	assert.True(t, pages[0][2].HasSlots())
	assert.False(t, pages[0][1].HasSlots())
}

func TestBuildSchedulePages_AllPagesExactChunkSize(t *testing.T) {
	raw := make([]domain.RawDay, 0, 10)
	dates := []string{
		"2026-09-01", "2026-09-02", "2026-09-03", "2026-09-04", "2026-09-05",
		"2026-09-06", "2026-09-07", "2026-09-08", "2026-09-09", "2026-09-10",
	}
	for _, d := range dates {
		raw = append(raw, domain.RawDay{Date: d})
	}
	days := NormalizeDays(raw, nil, "2026-09-01")

	pages := BuildSchedulePages(days, nil, "2026-09-01", 7)

	// 10 дней -> 2 страницы ровно по 7, без неполного хвоста
	require.Len(t, pages, 2)
	for _, page := range pages {
		assert.Len(t, page, 7)
	}
	assert.Equal(t, "2026-09-08", pages[1][0].Date)
	assert.Equal(t, "2026-09-14", pages[1][6].Date)
}

func TestBuildSchedulePages_SparseInputCoversEveryInputDate(t *testing.T) {
	// Дыра в три недели между датами: диапазон шире, чем количество дней
	days := NormalizeDays([]domain.RawDay{
		{Date: "2026-09-01", Slots: []domain.RawSlot{openSlot("2026-09-01T10:00:00+09:00")}},
		{Date: "2026-09-22", Slots: []domain.RawSlot{openSlot("2026-09-22T10:00:00+09:00")}},
	}, nil, "2026-09-01")

	pages := BuildSchedulePages(days, nil, "2026-09-01", 7)

	seen := make(map[string]bool)
	for _, page := range pages {
		require.Len(t, page, 7)
		for _, day := range page {
			seen[day.Date] = true
		}
	}

	// Объединение дат всех страниц - надмножество дат входа
	assert.True(t, seen["2026-09-01"])
	assert.True(t, seen["2026-09-22"])
	require.Len(t, pages, 4)
}

func TestBuildSchedulePages_SkeletonTodayFlag(t *testing.T) {
	days := NormalizeDays([]domain.RawDay{
		{Date: "2026-08-30"},
	}, nil, "2026-09-01")

	pages := BuildSchedulePages(days, nil, "2026-09-01", 7)

	require.Len(t, pages, 1)
	// Скелет, совпавший с today, помечается как сегодня
	assert.Equal(t, "2026-09-01", pages[0][2].Date)
	assert.True(t, pages[0][2].IsToday)
}

func TestBuildSchedulePages_GarbageDateDaysRenderAtTail(t *testing.T) {
	days := NormalizeDays([]domain.RawDay{
		{Date: "2026-09-01", Slots: []domain.RawSlot{openSlot("2026-09-01T10:00:00+09:00")}},
		{Date: "next tuesday", Slots: []domain.RawSlot{openSlot("2026-09-02T11:00:00+09:00")}},
	}, nil, "2026-09-01")

	pages := BuildSchedulePages(days, nil, "2026-09-01", 7)

	require.Len(t, pages, 1)
	require.Len(t, pages[0], 7)
	assert.Equal(t, "2026-09-01", pages[0][0].Date)
	// День с нечитаемой датой занимает колонку сразу за датированным
	// диапазоном и сохраняет свои слоты
	assert.Equal(t, "next tuesday", pages[0][1].Date)
	assert.True(t, pages[0][1].HasSlots())
	assert.Equal(t, "2026-09-03", pages[0][2].Date)
}

func TestBuildSchedulePages_AllGarbageDatesStillRender(t *testing.T) {
	days := NormalizeDays([]domain.RawDay{
		{Date: "когда-нибудь"},
		{Date: "???"},
	}, nil, "2026-09-01")

	pages := BuildSchedulePages(days, nil, "2026-09-01", 7)

	require.Len(t, pages, 1)
	require.Len(t, pages[0], 7)
	rendered := make(map[string]bool)
	for _, day := range pages[0] {
		rendered[day.Date] = true
	}
	assert.True(t, rendered["когда-нибудь"])
	assert.True(t, rendered["???"])
}

func TestBuildSchedulePages_GarbageTodayDeterministicAnchor(t *testing.T) {
	// Непарсируемый today не роняет разбивку в текущее время:
	// якорь фиксированный, выход детерминированный
	first := BuildSchedulePages(nil, nil, "not-a-date", 7)
	second := BuildSchedulePages(nil, nil, "not-a-date", 7)

	require.Len(t, first, 1)
	require.Len(t, first[0], 7)
	assert.Equal(t, "0001-01-01", first[0][0].Date)
	assert.Equal(t, first, second)
}

func TestBuildSchedulePages_DefaultChunkSize(t *testing.T) {
	pages := BuildSchedulePages(nil, nil, "2026-09-01", 0)

	require.Len(t, pages, 1)
	assert.Len(t, pages[0], domain.DefaultScheduleChunkDays)
}
