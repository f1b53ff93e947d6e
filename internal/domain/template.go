package domain

import "sort"

// TemplateSlot one slot of an operator-authored fallback template.
// Times are local JST; duration sizes the synthesized end_at
type TemplateSlot struct {
	Hour            int
	Minute          int
	DurationMinutes int
	Status          SlotStatus
}

// TemplateDay a fallback template day, positioned relative to "today"
type TemplateDay struct {
	DayOffset int
	Slots     []TemplateSlot
}

// FallbackTemplate operator-authored synthetic availability for one provider.
// Keyed by the provider's stable numeric ID, never by display name
type FallbackTemplate struct {
	ProviderID int64
	Days       []TemplateDay
}

// IsEmpty returns true if the template has no days at all
func (t *FallbackTemplate) IsEmpty() bool {
	return t == nil || len(t.Days) == 0
}

// DayAt returns the template day at the given offset, if present
func (t *FallbackTemplate) DayAt(offset int) (*TemplateDay, bool) {
	if t == nil {
		return nil, false
	}
	for i := range t.Days {
		if t.Days[i].DayOffset == offset {
			return &t.Days[i], true
		}
	}
	return nil, false
}

// SortSlots orders the day's slot templates by (hour, minute)
func (d *TemplateDay) SortSlots() {
	sort.SliceStable(d.Slots, func(i, j int) bool {
		if d.Slots[i].Hour != d.Slots[j].Hour {
			return d.Slots[i].Hour < d.Slots[j].Hour
		}
		return d.Slots[i].Minute < d.Slots[j].Minute
	})
}

// HasSlotAt reports whether the day already has a slot template at exactly
// (hour, minute); used to prevent double-insertion of the default slot
func (d *TemplateDay) HasSlotAt(hour, minute int) bool {
	for _, s := range d.Slots {
		if s.Hour == hour && s.Minute == minute {
			return true
		}
	}
	return false
}
