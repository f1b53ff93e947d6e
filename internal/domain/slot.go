package domain

import "github.com/m04kA/SLB-ReservationService/pkg/types"

// SlotStatus represents the status of a single bookable time interval
type SlotStatus string

const (
	SlotStatusOpen      SlotStatus = "open"
	SlotStatusTentative SlotStatus = "tentative"
	SlotStatusBlocked   SlotStatus = "blocked"
)

// IsValid returns true if the status is one of the known values
func (s SlotStatus) IsValid() bool {
	return s == SlotStatusOpen || s == SlotStatusTentative || s == SlotStatusBlocked
}

// IsSelectable returns true if a slot with this status can enter a selection
func (s SlotStatus) IsSelectable() bool {
	return s == SlotStatusOpen || s == SlotStatusTentative
}

// RawSlot represents a slot exactly as it arrives from an availability source.
// Timestamps are ISO-8601 strings with a fixed +09:00 offset; upstream data is
// untrusted, so nothing here is assumed to parse
type RawSlot struct {
	StartAt string     `json:"start_at"`
	EndAt   string     `json:"end_at"`
	Status  SlotStatus `json:"status"`
}

// RawDay represents a calendar date bucket as it arrives from a source.
// The date sequence may be sparse and the slots list may be empty
type RawDay struct {
	Date    string    `json:"date"`
	IsToday bool      `json:"is_today,omitempty"`
	Slots   []RawSlot `json:"slots"`
}

// NormalizedSlot is the canonical slot shape used by the engine.
// TimeKey is always derived from StartAt, never trusted from upstream
type NormalizedSlot struct {
	StartAt string
	EndAt   string
	Status  SlotStatus
	TimeKey types.TimeString
}

// IsSelectable returns true if the slot can enter a selection
func (s NormalizedSlot) IsSelectable() bool {
	return s.Status.IsSelectable()
}

// NormalizedDay is the canonical day shape used by the engine.
// Days with zero slots are retained so an empty column still renders
type NormalizedDay struct {
	Date    string
	Label   string
	IsToday bool
	Slots   []NormalizedSlot
}

// HasSlots returns true if the day contains at least one slot
func (d NormalizedDay) HasSlots() bool {
	return len(d.Slots) > 0
}

// FirstSelectable returns the first selectable slot of the day, if any
func (d NormalizedDay) FirstSelectable() (NormalizedSlot, bool) {
	for _, slot := range d.Slots {
		if slot.IsSelectable() {
			return slot, true
		}
	}
	return NormalizedSlot{}, false
}
