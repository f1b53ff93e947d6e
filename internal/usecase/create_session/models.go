package create_session

import (
	"github.com/m04kA/SLB-ReservationService/internal/domain"
	selectionModels "github.com/m04kA/SLB-ReservationService/internal/service/selection/models"
)

// EngineDefaults настройки движка, применяемые при отсутствии данных провайдера
type EngineDefaults struct {
	SlotDurationMinutes int  // Шаг сетки слотов (минуты)
	ChunkDays           int  // Размер страницы календаря (дни)
	FallbackEnabled     bool // Глобальный флаг синтеза fallback-расписания
}

// Request модель запроса на создание календарной сессии
type Request struct {
	ProviderID     int64           // ID провайдера
	RawDays        []domain.RawDay // Сырой фид доступности с фронтенда (опционально)
	DefaultStartAt string          // Рекламируемое время начала из карточки-сводки (опционально)
}

// Response модель ответа с созданной сессией
type Response struct {
	SessionID string                        // ID созданной сессии
	View      *selectionModels.CalendarView // Начальное представление календаря
}
