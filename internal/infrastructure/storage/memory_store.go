package storage

import (
	"sync"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// MemoryStore implementa repository.SessionStore en memoria.
// Sobrevive a "recargas" mientras se reutilice la misma instancia; se usa en tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore construye un almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[TokenKey], nil
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[TokenKey] = token
	return nil
}

func (s *MemoryStore) User() (*entity.UserProfile, error) {
	s.mu.RLock()
	raw := s.data[UserKey]
	s.mu.RUnlock()
	return decodeUser(raw)
}

func (s *MemoryStore) SetUser(user entity.UserProfile) error {
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[UserKey] = raw
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, TokenKey)
	delete(s.data, UserKey)
	return nil
}

// Raw devuelve el valor crudo de una clave (inspección en tests).
func (s *MemoryStore) Raw(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}
