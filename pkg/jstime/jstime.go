// Package jstime contains pure helpers for the fixed-offset JST (UTC+9) timezone.
//
// All dates crossing a string boundary in the engine go through this package, so
// the behavior never depends on the host locale or the ambient local timezone.
// Every function is deterministic for a given instant and never fails: malformed
// instants are the caller's responsibility to reject before formatting.
package jstime

import "time"

const (
	// DateFormat формат локальной даты "YYYY-MM-DD"
	DateFormat = "2006-01-02"

	// ISOFormat формат ISO-8601 с фиксированным смещением "+09:00"
	ISOFormat = "2006-01-02T15:04:05+09:00"

	offsetSeconds = 9 * 60 * 60
)

// zone фиксированная зона UTC+9, без переходов и без зависимости от tzdata
var zone = time.FixedZone("JST", offsetSeconds)

// Zone returns the fixed UTC+9 location.
func Zone() *time.Location {
	return zone
}

// FormatLocalDate returns the JST calendar date ("YYYY-MM-DD") of the instant,
// independent of the instant's own offset metadata.
func FormatLocalDate(t time.Time) string {
	return t.In(zone).Format(DateFormat)
}

// ToISOWithOffset formats the instant as an ISO-8601 string carrying the fixed
// "+09:00" suffix, byte-for-byte in the shape the live availability feed uses.
func ToISOWithOffset(t time.Time) string {
	return t.In(zone).Format(ISOFormat)
}

// Today returns the JST date string for the given clock value.
func Today(now time.Time) string {
	return FormatLocalDate(now)
}

// StartOfDay returns midnight JST of the instant's JST date.
func StartOfDay(t time.Time) time.Time {
	local := t.In(zone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)
}

// Compose builds an instant on the given JST date at hour:minute.
func Compose(date time.Time, hour, minute int) time.Time {
	local := date.In(zone)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, zone)
}

// AddDays shifts the instant by a whole number of JST days.
func AddDays(t time.Time, days int) time.Time {
	return t.In(zone).AddDate(0, 0, days)
}

// ParseDate parses a "YYYY-MM-DD" string as midnight JST.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, date, zone)
}
