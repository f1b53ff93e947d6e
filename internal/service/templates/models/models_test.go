package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
)

func TestToDomainTemplate_AppliesDefaults(t *testing.T) {
	req := &ReplaceTemplateRequest{
		ProviderID: 7,
		Days: []TemplateDayPayload{
			{
				DayOffset: 1,
				Slots: []TemplateSlotPayload{
					// Нулевая длительность и пустой статус заполняются умолчаниями
					{Hour: 10, Minute: 30},
					{Hour: 12, Minute: 0, DurationMinutes: 45, Status: "blocked"},
				},
			},
		},
	}

	tmpl := req.ToDomainTemplate()

	assert.Equal(t, int64(7), tmpl.ProviderID)
	assert.Len(t, tmpl.Days, 1)
	assert.Equal(t, 1, tmpl.Days[0].DayOffset)

	first := tmpl.Days[0].Slots[0]
	assert.Equal(t, domain.DefaultInjectedDurationMinutes, first.DurationMinutes)
	assert.Equal(t, domain.SlotStatusOpen, first.Status)

	second := tmpl.Days[0].Slots[1]
	assert.Equal(t, 45, second.DurationMinutes)
	assert.Equal(t, domain.SlotStatusBlocked, second.Status)
}

func TestFromDomainTemplate_RoundTrip(t *testing.T) {
	tmpl := &domain.FallbackTemplate{
		ProviderID: 7,
		Days: []domain.TemplateDay{
			{DayOffset: 0, Slots: []domain.TemplateSlot{
				{Hour: 18, Minute: 0, DurationMinutes: 90, Status: domain.SlotStatusOpen},
			}},
		},
	}

	resp := FromDomainTemplate(tmpl)

	assert.Equal(t, int64(7), resp.ProviderID)
	assert.Len(t, resp.Days, 1)
	assert.Equal(t, TemplateSlotPayload{Hour: 18, Minute: 0, DurationMinutes: 90, Status: "open"}, resp.Days[0].Slots[0])
}
