package domain

// Selection constraints
const (
	// MaxSelectedSlots hard cap on the user's in-progress selection
	MaxSelectedSlots = 3
)

// Default engine configuration values
const (
	DefaultSlotStepMinutes         = 30
	DefaultScheduleChunkDays       = 7
	DefaultInjectedDurationMinutes = 90

	// Fixed fallback window used when no slot exists anywhere in the input
	DefaultTimelineStartMinutes = 10 * 60 // 10:00
	DefaultTimelineEndMinutes   = 22 * 60 // 22:00
)

// Fallback injection bounds
const (
	// MinInjectionOffsetDays / MaxInjectionOffsetDays bound the day-offset
	// window in which a default-start slot may create a new template day
	MinInjectionOffsetDays = 0
	MaxInjectionOffsetDays = 13
)

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 240
	MaxNotesLength     = 500
	MaxNameLength      = 100
	MaxContactLength   = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
