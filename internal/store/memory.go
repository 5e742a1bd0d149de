package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process BlobStore and SetEventRepo.
// Nothing survives the process; it is meant for tests and dry runs.
type MemoryStore struct {
	mu     sync.Mutex
	blobs  map[string][]byte
	events []SetEvent
	nextID int64
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.blobs, k)
	}
	return nil
}

func (m *MemoryStore) AppendSetEvent(_ context.Context, data SetEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.events = append(m.events, SetEvent{
		ID:           m.nextID,
		RecordedAt:   time.Now().UTC(),
		SetEventData: data,
	})
	return nil
}

func (m *MemoryStore) QuerySetEvents(_ context.Context, opts QueryOpts) ([]SetEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []SetEvent
	for i := len(m.events) - 1; i >= 0; i-- {
		e := m.events[i]
		if opts.TopicID != "" && e.TopicID != opts.TopicID {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryStore) ClearSetEvents(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = nil
	return nil
}
