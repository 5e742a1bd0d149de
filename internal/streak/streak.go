// Package streak tracks the account-wide run of consecutive practice days.
package streak

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/quizmastery/internal/calendar"
	"github.com/abhisek/quizmastery/internal/store"
)

// Key is the store key of the streak document.
const Key = "mastery/streak"

// State is the persisted streak record.
type State struct {
	CurrentStreak     int            `json:"current_streak"`
	LastPracticedDate *calendar.Date `json:"last_practiced_date,omitempty"`
}

// Advance applies one completed set on today to s.
// It reports whether the state changed.
//
//   - same day as the last practice: unchanged
//   - exactly one day later: streak + 1
//   - anything else (gap, no prior date, clock went backwards): streak = 1
func Advance(s State, today calendar.Date) (State, bool) {
	if s.LastPracticedDate != nil {
		switch calendar.DaysBetween(*s.LastPracticedDate, today) {
		case 0:
			return s, false
		case 1:
			return State{CurrentStreak: s.CurrentStreak + 1, LastPracticedDate: &today}, true
		}
	}
	return State{CurrentStreak: 1, LastPracticedDate: &today}, true
}

// Tracker persists the streak through a BlobStore.
type Tracker struct {
	store store.BlobStore
	clock calendar.Clock
	log   *zap.Logger
}

// NewTracker creates a Tracker. A nil logger discards log output.
func NewTracker(bs store.BlobStore, clock calendar.Clock, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{store: bs, clock: clock, log: log.Named("streak")}
}

// Load returns the stored streak, or the zero state when it is missing or unreadable.
func (t *Tracker) Load(ctx context.Context) State {
	s, err := t.loadForUpdate(ctx)
	if err != nil {
		return State{}
	}
	return s
}

// loadForUpdate is Load for Touch. A store error other than ErrNotFound is
// returned so that Touch does not save over a streak it could not read.
func (t *Tracker) loadForUpdate(ctx context.Context) (State, error) {
	raw, err := t.store.Load(ctx, Key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return State{}, nil
		}
		t.log.Warn("load streak", zap.String("key", Key), zap.Error(err))
		return State{}, fmt.Errorf("load streak: %w", err)
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		t.log.Warn("decode streak", zap.String("key", Key), zap.ByteString("raw", raw), zap.Error(err))
		return State{}, nil
	}
	if s.CurrentStreak < 0 {
		s.CurrentStreak = 0
	}
	return s, nil
}

// Touch records practice today and returns the resulting streak.
// Repeated calls on the same day are no-ops. When the new state cannot be
// saved the in-memory streak is still returned along with the error. When
// the stored streak cannot be read nothing is saved and 0 is returned with
// the error.
func (t *Tracker) Touch(ctx context.Context) (int, error) {
	cur, err := t.loadForUpdate(ctx)
	if err != nil {
		return 0, err
	}
	next, changed := Advance(cur, t.clock.Today())
	if !changed {
		return next.CurrentStreak, nil
	}
	if err := t.save(ctx, next); err != nil {
		t.log.Error("save streak", zap.String("key", Key), zap.Error(err))
		return next.CurrentStreak, err
	}
	return next.CurrentStreak, nil
}

func (t *Tracker) save(ctx context.Context, s State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode streak: %w", err)
	}
	if err := t.store.Save(ctx, Key, raw); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}
