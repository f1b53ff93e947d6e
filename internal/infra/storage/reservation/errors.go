package reservation

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("reservation.repository: request not found")

	// ErrNoSlots возвращается при попытке создать заявку без слотов
	ErrNoSlots = errors.New("reservation.repository: request has no slots")

	// ErrAlreadyDecided возвращается, когда заявка уже обработана оператором
	ErrAlreadyDecided = errors.New("reservation.repository: request already decided")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("reservation.repository: invalid request status")
)
