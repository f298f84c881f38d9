package credstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store for tests and ephemeral sessions. State is
// lost when the process exits.
type Memory struct {
	mu            sync.RWMutex
	token         string
	hasToken      bool
	identifier    string
	hasIdentifier bool
}

// NewMemory describes the newmemory operation and its observable behavior.
func NewMemory() *Memory {
	return &Memory{}
}

// SaveToken implements Store.
func (m *Memory) SaveToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.hasToken = true
	return nil
}

// LoadToken implements Store.
func (m *Memory) LoadToken(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasToken {
		return "", ErrTokenNotFound
	}
	return m.token, nil
}

// ClearToken implements Store.
func (m *Memory) ClearToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.hasToken = false
	return nil
}

// RememberIdentifier implements Store.
func (m *Memory) RememberIdentifier(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identifier = email
	m.hasIdentifier = true
	return nil
}

// LoadIdentifier implements Store.
func (m *Memory) LoadIdentifier(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasIdentifier {
		return "", ErrIdentifierNotFound
	}
	return m.identifier, nil
}

// ForgetIdentifier implements Store.
func (m *Memory) ForgetIdentifier(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identifier = ""
	m.hasIdentifier = false
	return nil
}
