package selection

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("calendar session not found")

	// ErrInvalidTab возвращается при неизвестной вкладке формы
	ErrInvalidTab = errors.New("invalid form tab")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
