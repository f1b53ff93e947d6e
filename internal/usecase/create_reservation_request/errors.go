package create_reservation_request

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("create_reservation_request: session not found")

	// ErrEmptySelection возвращается, когда в сессии нет выбранных слотов
	ErrEmptySelection = errors.New("create_reservation_request: selection is empty")

	// ErrTooManySlots возвращается при превышении лимита слотов в заявке
	ErrTooManySlots = errors.New("create_reservation_request: too many requested slots")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation_request: internal error")
)
