package update_fallback_template

import (
	templatesModels "github.com/m04kA/SLB-ReservationService/internal/service/templates/models"
)

// UpdateFallbackTemplateRequest HTTP request model
type UpdateFallbackTemplateRequest struct {
	Days []templatesModels.TemplateDayPayload `json:"days"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateFallbackTemplateRequest) ToServiceRequest(providerID int64) *templatesModels.ReplaceTemplateRequest {
	return &templatesModels.ReplaceTemplateRequest{
		ProviderID: providerID,
		Days:       r.Days,
	}
}
