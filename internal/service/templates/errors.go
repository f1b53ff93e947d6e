package templates

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда у провайдера нет шаблона
	ErrTemplateNotFound = errors.New("fallback template not found")

	// ErrInvalidInput возвращается при некорректных данных шаблона
	ErrInvalidInput = errors.New("invalid template data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
