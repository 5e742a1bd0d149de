package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by BlobStore.Load when no blob exists for a key.
var ErrNotFound = errors.New("store: key not found")

// BlobStore holds independently addressable JSON documents.
// Every Save replaces the whole document stored under the key.
type BlobStore interface {
	// Load returns the raw document for key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the document stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the documents for the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// QueryOpts configures set event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	TopicID string // only events for this topic ("" = all)
}

// SetEventData captures the data for a single completed question set.
type SetEventData struct {
	SetID        string
	TopicID      string
	Correct      int
	Total        int
	PointsEarned int
	OldLevel     int
	NewLevel     int
	Streak       int
}

// SetEvent is a persisted SetEventData with its storage metadata.
type SetEvent struct {
	ID         int64
	RecordedAt time.Time
	SetEventData
}

// SetEventRepo is an append-only log of completed question sets.
type SetEventRepo interface {
	// AppendSetEvent records a completed set.
	AppendSetEvent(ctx context.Context, data SetEventData) error

	// QuerySetEvents returns recorded sets, newest first.
	QuerySetEvents(ctx context.Context, opts QueryOpts) ([]SetEvent, error)

	// ClearSetEvents removes every recorded set.
	ClearSetEvents(ctx context.Context) error
}
