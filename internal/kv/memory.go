package kv

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// Memory is an in-process Store. Values are held as marshaled JSON so that
// reads decode an independent copy, same as the durable backends. Used by
// tests and STORAGE_BACKEND=memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string, out any) error {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &types.PersistenceError{Op: "get", Key: key, Err: err}
	}

	return nil
}

func (m *Memory) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &types.PersistenceError{Op: "set", Key: key, Err: err}
	}

	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()

	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()

	return nil
}
