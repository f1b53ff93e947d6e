package sessionstore

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/SLB-ReservationService/internal/service/selection"
)

// Store in-memory хранилище календарных сессий с TTL и верхней границей
// по количеству. Сессия живет, пока открыт оверлей: истечение TTL или
// вытеснение по размеру эквивалентны закрытию со стороны сервера
type Store struct {
	cache *expirable.LRU[string, *selection.Session]
}

// New создает хранилище на maxSessions живых сессий с временем жизни ttl
func New(maxSessions int, ttl time.Duration) *Store {
	return &Store{
		cache: expirable.NewLRU[string, *selection.Session](maxSessions, nil, ttl),
	}
}

// Put кладет сессию под её идентификатором
func (s *Store) Put(id string, session *selection.Session) {
	s.cache.Add(id, session)
}

// Get возвращает живую сессию; обращение продлевает её в LRU-порядке
func (s *Store) Get(id string) (*selection.Session, bool) {
	return s.cache.Get(id)
}

// Delete удаляет сессию (явное закрытие оверлея)
func (s *Store) Delete(id string) {
	s.cache.Remove(id)
}

// Len текущее количество живых сессий (для метрик и логов)
func (s *Store) Len() int {
	return s.cache.Len()
}
