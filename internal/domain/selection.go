package domain

// SelectedSlot represents one entry of the user's bounded selection.
// A blocked slot can never become a SelectedSlot
type SelectedSlot struct {
	StartAt string
	EndAt   string
	Date    string
	Status  SlotStatus
}

// AppendSelected appends slot to the selection, evicting the oldest entries
// so the result never exceeds MaxSelectedSlots. FIFO eviction keeps the most
// recent intent instead of rejecting it
func AppendSelected(selection []SelectedSlot, slot SelectedSlot) []SelectedSlot {
	next := append(append([]SelectedSlot{}, selection...), slot)
	if len(next) > MaxSelectedSlots {
		next = next[len(next)-MaxSelectedSlots:]
	}
	return next
}

// RemoveSelected removes the entry identified by startAt, preserving order
func RemoveSelected(selection []SelectedSlot, startAt string) []SelectedSlot {
	next := make([]SelectedSlot, 0, len(selection))
	for _, s := range selection {
		if s.StartAt != startAt {
			next = append(next, s)
		}
	}
	return next
}

// ContainsSelected reports whether the selection has an entry with startAt
func ContainsSelected(selection []SelectedSlot, startAt string) bool {
	for _, s := range selection {
		if s.StartAt == startAt {
			return true
		}
	}
	return false
}
