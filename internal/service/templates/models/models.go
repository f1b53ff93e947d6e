package models

import (
	"github.com/m04kA/SLB-ReservationService/internal/domain"
)

// TemplateSlotPayload один слот шаблона
type TemplateSlotPayload struct {
	Hour            int    `json:"hour"`
	Minute          int    `json:"minute"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

// TemplateDayPayload день шаблона со смещением от "сегодня"
type TemplateDayPayload struct {
	DayOffset int                   `json:"dayOffset"`
	Slots     []TemplateSlotPayload `json:"slots"`
}

// ReplaceTemplateRequest модель запроса на полную замену шаблона провайдера
type ReplaceTemplateRequest struct {
	ProviderID int64
	Days       []TemplateDayPayload
}

// TemplateResponse модель ответа с шаблоном провайдера
type TemplateResponse struct {
	ProviderID int64                `json:"providerId"`
	Days       []TemplateDayPayload `json:"days"`
}

// ToDomainTemplate конвертирует запрос в доменную модель
func (r *ReplaceTemplateRequest) ToDomainTemplate() *domain.FallbackTemplate {
	tmpl := &domain.FallbackTemplate{ProviderID: r.ProviderID}
	for _, day := range r.Days {
		slots := make([]domain.TemplateSlot, len(day.Slots))
		for i, slot := range day.Slots {
			duration := slot.DurationMinutes
			if duration <= 0 {
				duration = domain.DefaultInjectedDurationMinutes
			}
			status := domain.SlotStatus(slot.Status)
			if slot.Status == "" {
				status = domain.SlotStatusOpen
			}
			slots[i] = domain.TemplateSlot{
				Hour:            slot.Hour,
				Minute:          slot.Minute,
				DurationMinutes: duration,
				Status:          status,
			}
		}
		tmpl.Days = append(tmpl.Days, domain.TemplateDay{
			DayOffset: day.DayOffset,
			Slots:     slots,
		})
	}
	return tmpl
}

// FromDomainTemplate конвертирует доменную модель в ответ
func FromDomainTemplate(tmpl *domain.FallbackTemplate) *TemplateResponse {
	resp := &TemplateResponse{ProviderID: tmpl.ProviderID}
	for _, day := range tmpl.Days {
		slots := make([]TemplateSlotPayload, len(day.Slots))
		for i, slot := range day.Slots {
			slots[i] = TemplateSlotPayload{
				Hour:            slot.Hour,
				Minute:          slot.Minute,
				DurationMinutes: slot.DurationMinutes,
				Status:          string(slot.Status),
			}
		}
		resp.Days = append(resp.Days, TemplateDayPayload{
			DayOffset: day.DayOffset,
			Slots:     slots,
		})
	}
	return resp
}
