package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns a process-local key-value store. Values are lost on exit.
func NewMemoryStore() KeyValueStore {
	return &memoryStore{
		values: make(map[string]string),
	}
}

func (that *memoryStore) Get(_ context.Context, key string) (string, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.values[key]
	if !ok {
		return "", apperror.ErrNotFound
	}

	return value, nil
}

func (that *memoryStore) Set(_ context.Context, key, value string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.values[key] = value

	return nil
}

func (that *memoryStore) Delete(_ context.Context, key string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.values, key)

	return nil
}
