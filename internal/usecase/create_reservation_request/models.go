package create_reservation_request

import (
	"time"
)

// Request модель запроса на создание заявки из сессии
type Request struct {
	SessionID string  // ID календарной сессии
	UserID    int64   // ID пользователя
	Name      string  // Имя посетителя
	Contact   string  // Контакт для связи (телефон или email)
	Notes     *string // Дополнительные пожелания (опционально)
}

// RequestedSlot один запрошенный слот созданной заявки
type RequestedSlot struct {
	StartAt string // Начало слота (ISO 8601)
	EndAt   string // Конец слота (ISO 8601)
	Date    string // Дата слота (YYYY-MM-DD)
	Status  string // Статус слота на момент выбора
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID         int64           // ID созданной заявки
	ProviderID int64           // ID провайдера
	UserID     int64           // ID пользователя
	Source     string          // Происхождение данных календаря (api | fallback)
	Status     string          // Статус заявки (pending)
	Name       string          // Имя посетителя
	Contact    string          // Контакт для связи
	Notes      *string         // Пожелания
	Slots      []RequestedSlot // Запрошенные слоты в порядке выбора

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
