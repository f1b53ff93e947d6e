package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
)

func TestExtractTimeKey(t *testing.T) {
	tests := []struct {
		name    string
		startAt string
		want    string
	}{
		{
			name:    "iso with jst offset",
			startAt: "2026-09-01T10:30:00+09:00",
			want:    "10:30",
		},
		{
			name:    "iso with utc suffix",
			startAt: "2026-09-01T23:45:00Z",
			want:    "23:45",
		},
		{
			name:    "hours out of range degrade to next match",
			startAt: "2026-09-01T29:15:00+09:00",
			want:    "15:00", // "29:" не время, regex цепляет следующую пару
		},
		{
			name:    "garbage falls back to zero key",
			startAt: "not-a-timestamp",
			want:    "00:00",
		},
		{
			name:    "empty string",
			startAt: "",
			want:    "00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTimeKey(tt.startAt).String())
		})
	}
}

func TestNormalizeDays_SortedAscendingNoDuplicates(t *testing.T) {
	raw := []domain.RawDay{
		{Date: "2026-09-03", Slots: []domain.RawSlot{openSlot("2026-09-03T12:00:00+09:00")}},
		{Date: "2026-09-01", Slots: []domain.RawSlot{openSlot("2026-09-01T10:00:00+09:00")}},
		{Date: "2026-09-02"},
		{Date: "2026-09-01", Slots: []domain.RawSlot{openSlot("2026-09-01T18:00:00+09:00")}},
	}

	days := NormalizeDays(raw, DefaultDayLabel, "2026-09-01")

	require.Len(t, days, 3)
	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.Equal(t, "2026-09-02", days[1].Date)
	assert.Equal(t, "2026-09-03", days[2].Date)

	// При дублировании даты остается первое вхождение
	require.Len(t, days[0].Slots, 1)
	assert.Equal(t, "10:00", days[0].Slots[0].TimeKey.String())
}

func TestNormalizeDays_IsTodayFlagOrDateMatch(t *testing.T) {
	raw := []domain.RawDay{
		{Date: "2026-09-01", IsToday: false},
		{Date: "2026-09-02", IsToday: true},
		{Date: "2026-09-03"},
	}

	days := NormalizeDays(raw, nil, "2026-09-01")

	// Флаг источника false, но дата совпадает с today - все равно true
	assert.True(t, days[0].IsToday)
	// Флаг источника выставлен - true независимо от даты
	assert.True(t, days[1].IsToday)
	assert.False(t, days[2].IsToday)
}

func TestNormalizeDays_KeepsEmptyDaysAndSlotOrder(t *testing.T) {
	raw := []domain.RawDay{
		{Date: "2026-09-01", Slots: []domain.RawSlot{
			openSlot("2026-09-01T15:00:00+09:00"),
			openSlot("2026-09-01T10:00:00+09:00"),
		}},
		{Date: "2026-09-02", Slots: nil},
	}

	days := NormalizeDays(raw, nil, "2026-09-01")

	require.Len(t, days, 2)
	// Порядок слотов сохраняется как есть, без пересортировки
	assert.Equal(t, "15:00", days[0].Slots[0].TimeKey.String())
	assert.Equal(t, "10:00", days[0].Slots[1].TimeKey.String())
	// Пустой день сохраняется
	assert.Empty(t, days[1].Slots)
}

func TestNormalizeDays_MalformedDatePassesThrough(t *testing.T) {
	raw := []domain.RawDay{
		{Date: "oops"},
		{Date: "2026-09-01"},
	}

	days := NormalizeDays(raw, DefaultDayLabel, "2026-09-01")

	require.Len(t, days, 2)
	// Некорректная дата не отбрасывается, подпись деградирует до самой даты
	assert.Equal(t, "oops", days[1].Date)
	assert.Equal(t, "oops", days[1].Label)
}

func openSlot(startAt string) domain.RawSlot {
	return domain.RawSlot{StartAt: startAt, EndAt: startAt, Status: domain.SlotStatusOpen}
}
