package fallbacktmpl

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда у провайдера нет шаблона
	ErrTemplateNotFound = errors.New("fallbacktmpl.repository: template not found")

	// ErrInvalidSlot возвращается при попытке сохранить слот вне суток
	ErrInvalidSlot = errors.New("fallbacktmpl.repository: invalid template slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("fallbacktmpl.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("fallbacktmpl.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("fallbacktmpl.repository: failed to scan row")
)
