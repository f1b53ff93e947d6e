package selection

import "github.com/m04kA/SLB-ReservationService/internal/service/selection/models"

// viewFromSnapshot собирает представление календаря из среза состояния сессии
func viewFromSnapshot(snap Snapshot) *models.CalendarView {
	return &models.CalendarView{
		SessionID:    snap.ID,
		ProviderID:   snap.ProviderID,
		SourceType:   string(snap.SourceType),
		Page:         snap.Page,
		PageCount:    snap.PageCount,
		Days:         models.FromNormalizedDays(snap.Days, snap.Selection),
		Timeline:     models.FromTimeline(snap.Timeline),
		Selection:    models.FromSelectedSlots(snap.Selection),
		FormOpen:     snap.FormOpen,
		FormTab:      string(snap.FormTab),
		IsRefreshing: snap.IsRefreshing,
	}
}
