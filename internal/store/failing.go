package store

import (
	"context"
	"sync"
)

// FailingStore wraps a BlobStore and injects errors for tests.
// With both errors nil it behaves exactly like the wrapped store.
type FailingStore struct {
	Inner BlobStore

	mu      sync.Mutex
	loadErr error
	saveErr error
	saves   int
}

// NewFailingStore wraps inner (a fresh MemoryStore when nil).
func NewFailingStore(inner BlobStore) *FailingStore {
	if inner == nil {
		inner = NewMemoryStore()
	}
	return &FailingStore{Inner: inner}
}

// FailLoads makes every Load return err (nil restores normal behavior).
func (f *FailingStore) FailLoads(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadErr = err
}

// FailSaves makes every Save and Delete return err (nil restores normal behavior).
func (f *FailingStore) FailSaves(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveErr = err
}

// Saves returns the number of Save calls attempted.
func (f *FailingStore) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

func (f *FailingStore) Load(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	err := f.loadErr
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.Inner.Load(ctx, key)
}

func (f *FailingStore) Save(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	f.saves++
	err := f.saveErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.Inner.Save(ctx, key, data)
}

func (f *FailingStore) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	err := f.saveErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.Inner.Delete(ctx, keys...)
}
