package selection

// SessionStore интерфейс хранилища календарных сессий
type SessionStore interface {
	Put(id string, session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
