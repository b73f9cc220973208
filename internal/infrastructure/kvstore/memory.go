package kvstore

import (
	"context"
	"sync"
)

// Memory é um driver KV em memória, usado em testes e como fallback
// quando nenhum armazenamento está configurado
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory cria um novo driver em memória
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Load implementa KV.Load
func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Save implementa KV.Save
func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Delete implementa KV.Delete
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Close implementa KV.Close
func (m *Memory) Close() error {
	return nil
}
