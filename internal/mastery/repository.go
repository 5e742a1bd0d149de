package mastery

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/quizmastery/internal/store"
)

// ErrNotSaved marks an operation whose result was computed but could not be
// persisted. The in-memory result is still returned alongside it.
var ErrNotSaved = errors.New("mastery: result not saved")

// Repository reads and writes the topic map document.
// Plain reads never fail: missing or unreadable data yields an empty map.
// Writes only go through after a successful read, so a transient read error
// cannot replace stored topics with an empty document.
type Repository struct {
	store store.BlobStore
	log   *zap.Logger
}

// NewRepository creates a Repository. A nil logger discards log output.
func NewRepository(bs store.BlobStore, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{store: bs, log: log}
}

// LoadAll returns every stored topic record. The map is never nil.
func (r *Repository) LoadAll(ctx context.Context) map[string]*TopicProgress {
	topics, err := r.loadForUpdate(ctx)
	if err != nil {
		return make(map[string]*TopicProgress)
	}
	return topics
}

// loadForUpdate is LoadAll for write paths. A store error other than
// ErrNotFound is returned, and the caller must not save over the document.
// An undecodable document yields an empty map that may be overwritten; its
// raw contents are logged first.
func (r *Repository) loadForUpdate(ctx context.Context) (map[string]*TopicProgress, error) {
	raw, err := r.store.Load(ctx, TopicsKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return make(map[string]*TopicProgress), nil
		}
		r.log.Warn("load topics", zap.String("key", TopicsKey), zap.Error(err))
		return make(map[string]*TopicProgress), fmt.Errorf("load topics: %w", err)
	}
	topics, err := decodeTopics(raw)
	if err != nil {
		r.log.Warn("decode topics",
			zap.String("key", TopicsKey),
			zap.ByteString("raw", raw),
			zap.Error(err),
		)
		return make(map[string]*TopicProgress), nil
	}
	return topics, nil
}

// SaveAll replaces the whole topic document.
func (r *Repository) SaveAll(ctx context.Context, topics map[string]*TopicProgress) error {
	raw, err := encodeTopics(topics)
	if err != nil {
		return fmt.Errorf("encode topics: %w", err)
	}
	if err := r.store.Save(ctx, TopicsKey, raw); err != nil {
		r.log.Error("save topics", zap.String("key", TopicsKey), zap.Error(err))
		return fmt.Errorf("save topics: %w", err)
	}
	return nil
}

// GetOrDefault returns the stored record for topicID, or a zero record.
// The zero record is not persisted.
func (r *Repository) GetOrDefault(ctx context.Context, topicID string) *TopicProgress {
	if tp, ok := r.LoadAll(ctx)[topicID]; ok {
		return tp
	}
	return NewTopicProgress()
}

// EnsureAndLoad is GetOrDefault, but persists the zero record when the topic
// is absent. When the document cannot be read or written the zero record is
// returned with an error wrapping ErrNotSaved, and nothing is written.
func (r *Repository) EnsureAndLoad(ctx context.Context, topicID string) (*TopicProgress, error) {
	all, err := r.loadForUpdate(ctx)
	if err != nil {
		return NewTopicProgress(), fmt.Errorf("%w: %w", ErrNotSaved, err)
	}
	if tp, ok := all[topicID]; ok {
		return tp, nil
	}
	tp := NewTopicProgress()
	all[topicID] = tp
	if err := r.SaveAll(ctx, all); err != nil {
		return tp, fmt.Errorf("%w: %w", ErrNotSaved, err)
	}
	return tp, nil
}

// DeleteAll removes the topic document.
func (r *Repository) DeleteAll(ctx context.Context) error {
	if err := r.store.Delete(ctx, TopicsKey); err != nil {
		return fmt.Errorf("delete topics: %w", err)
	}
	return nil
}
