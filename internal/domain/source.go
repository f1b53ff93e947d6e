package domain

// SourceType provenance tag for the currently displayed calendar data
type SourceType string

const (
	// SourceAPI live availability data with at least one slot across all days
	SourceAPI SourceType = "api"

	// SourceFallback operator-authored demo data, shown only behind a feature flag
	SourceFallback SourceType = "fallback"

	// SourceNone nothing to show
	SourceNone SourceType = "none"
)

// IsSynthetic returns true if the displayed data is not real availability,
// so the presentation layer must warn the user
func (s SourceType) IsSynthetic() bool {
	return s == SourceFallback
}
