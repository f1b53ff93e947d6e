package providerservice

// Provider карточка провайдера из каталога
type Provider struct {
	ID                  int64  `json:"id"`
	DisplayName         string `json:"display_name"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	FallbackEnabled     bool   `json:"fallback_enabled"`
	// DefaultStartAt рекламируемое время начала из карточки-сводки (ISO 8601),
	// пустая строка - время не задано
	DefaultStartAt string `json:"default_start_at,omitempty"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
