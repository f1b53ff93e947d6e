package models

import (
	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/internal/schedule"
)

// CalendarView представление календаря для презентационного слоя:
// текущая страница дней, таймлайн, выбор и тег источника данных
type CalendarView struct {
	SessionID    string             `json:"sessionId"`
	ProviderID   int64              `json:"providerId"`
	SourceType   string             `json:"sourceType"`
	Page         int                `json:"page"`
	PageCount    int                `json:"pageCount"`
	Days         []DayView          `json:"days"`
	Timeline     []TimelineRowView  `json:"timeline"`
	Selection    []SelectedSlotView `json:"selection"`
	FormOpen     bool               `json:"formOpen"`
	FormTab      string             `json:"formTab"`
	IsRefreshing bool               `json:"isRefreshing"`
}

// DayView один день текущей страницы
type DayView struct {
	Date    string     `json:"date"`
	Label   string     `json:"label"`
	IsToday bool       `json:"isToday"`
	Slots   []SlotView `json:"slots"`
}

// SlotView один слот дня
type SlotView struct {
	StartAt  string `json:"startAt"`
	EndAt    string `json:"endAt"`
	Status   string `json:"status"`
	TimeKey  string `json:"timeKey"`
	Selected bool   `json:"selected"`
}

// TimelineRowView одна строка сетки времени
type TimelineRowView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// SelectedSlotView одна запись выбора пользователя
type SelectedSlotView struct {
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// FromNormalizedDays конвертирует дни страницы в представление
// selection нужен, чтобы пометить выбранные ячейки
func FromNormalizedDays(days []domain.NormalizedDay, selection []domain.SelectedSlot) []DayView {
	out := make([]DayView, len(days))
	for i, day := range days {
		slots := make([]SlotView, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = SlotView{
				StartAt:  slot.StartAt,
				EndAt:    slot.EndAt,
				Status:   string(slot.Status),
				TimeKey:  slot.TimeKey.String(),
				Selected: domain.ContainsSelected(selection, slot.StartAt),
			}
		}
		out[i] = DayView{
			Date:    day.Date,
			Label:   day.Label,
			IsToday: day.IsToday,
			Slots:   slots,
		}
	}
	return out
}

// FromTimeline конвертирует строки сетки времени
func FromTimeline(ticks []schedule.TimelineTime) []TimelineRowView {
	out := make([]TimelineRowView, len(ticks))
	for i, tick := range ticks {
		out[i] = TimelineRowView{Key: tick.Key.String(), Label: tick.Label}
	}
	return out
}

// FromSelectedSlots конвертирует выбор пользователя
func FromSelectedSlots(selection []domain.SelectedSlot) []SelectedSlotView {
	out := make([]SelectedSlotView, len(selection))
	for i, sel := range selection {
		out[i] = SelectedSlotView{
			StartAt: sel.StartAt,
			EndAt:   sel.EndAt,
			Date:    sel.Date,
			Status:  string(sel.Status),
		}
	}
	return out
}
