// Package session holds the process-wide auth token. The token is read from
// durable storage once, when the slot is opened, and written through on every
// change.
package session

import (
	"fmt"
	"sync"
)

// TokenKey is the storage key the token lives under.
const TokenKey = "auth_token"

// Storage is the durable key-value slot backing the token.
type Storage interface {
	Load() (string, error)
	Save(token string) error
	Delete() error
}

type Slot struct {
	mu      sync.RWMutex
	storage Storage
	token   string
}

func Open(storage Storage) (*Slot, error) {
	token, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	return &Slot{storage: storage, token: token}, nil
}

// Token implements client.TokenSource.
func (s *Slot) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Slot) Set(token string) error {
	if err := s.storage.Save(token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear forgets the token in memory even when the storage delete fails.
func (s *Slot) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	if err := s.storage.Delete(); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStorage(initial string) *MemoryStorage {
	return &MemoryStorage{token: initial}
}

func (m *MemoryStorage) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStorage) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStorage) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
