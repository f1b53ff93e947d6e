package providerservice

// Logger интерфейс логирования для клиента
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
