// Package snapshot is the persistence port of the lifecycle store. A
// backend holds exactly one opaque blob: the store serializes its whole
// state on every mutation and reads it back whole. Backends never inspect
// the bytes; corruption handling belongs to the store.
package snapshot

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound means no blob has been saved yet. It is a normal first-run
// condition, not a failure.
var ErrNotFound = errors.New("snapshot not found")

type Blob interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Memory is an in-process Blob for tests.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, ErrNotFound
	}

	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}
