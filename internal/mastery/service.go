package mastery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizmastery/internal/calendar"
	"github.com/abhisek/quizmastery/internal/quizbank"
	"github.com/abhisek/quizmastery/internal/store"
	"github.com/abhisek/quizmastery/internal/streak"
)

// Options configures a Service. Only Store is required.
type Options struct {
	// Store holds the topic and streak documents.
	Store store.BlobStore

	// Events receives one entry per recorded set. Optional.
	Events store.SetEventRepo

	// Registry enables chapter-level results. Optional.
	Registry *quizbank.Registry

	// Clock decides what "today" is. The zero Clock uses UTC.
	Clock calendar.Clock

	// Shuffler drives question selection. Defaults to DefaultShuffler.
	Shuffler Shuffler

	Logger *zap.Logger

	// NewSetID generates set identifiers. Defaults to random UUIDs.
	NewSetID func() string
}

// Service tracks per-topic mastery and the practice streak.
// Calls on one Service are serialized.
type Service struct {
	mu       sync.Mutex
	store    store.BlobStore
	repo     *Repository
	streak   *streak.Tracker
	events   store.SetEventRepo
	registry *quizbank.Registry
	clock    calendar.Clock
	shuffler Shuffler
	log      *zap.Logger
	newSetID func() string
}

// NewService creates a Service from opts.
func NewService(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sh := opts.Shuffler
	if sh == nil {
		sh = DefaultShuffler
	}
	newSetID := opts.NewSetID
	if newSetID == nil {
		newSetID = func() string { return uuid.New().String() }
	}

	return &Service{
		store:    opts.Store,
		repo:     NewRepository(opts.Store, log.Named("mastery")),
		streak:   streak.NewTracker(opts.Store, opts.Clock, log),
		events:   opts.Events,
		registry: opts.Registry,
		clock:    opts.Clock,
		shuffler: sh,
		log:      log.Named("mastery"),
		newSetID: newSetID,
	}
}

// Registry returns the chapter registry, which may be nil.
func (s *Service) Registry() *quizbank.Registry {
	return s.registry
}

// Repository exposes the underlying topic repository.
func (s *Service) Repository() *Repository {
	return s.repo
}

// SelectQuestions chooses the next set for topicID from pool. It reads the
// topic's history but never writes anything.
func (s *Service) SelectQuestions(ctx context.Context, pool []quizbank.Question, topicID string, setSize int) []quizbank.Question {
	if setSize <= 0 {
		return []quizbank.Question{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tp := s.repo.GetOrDefault(ctx, topicID)
	return Select(pool, tp.QuestionHistory, setSize, s.shuffler)
}

// RecordSetResult scores one completed set for topicID and persists the
// updated record and streak.
//
// The outcome is always fully computed. When persistence fails the outcome is
// returned with Saved=false together with an error wrapping ErrNotSaved. A
// document that cannot be read is never written: the set is scored against a
// fresh record and nothing stored is replaced.
// An empty results list changes nothing but still ensures the topic exists.
func (s *Service) RecordSetResult(ctx context.Context, topicID string, results []AnswerResult) (SetOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, loadErr := s.repo.loadForUpdate(ctx)
	tp, ok := all[topicID]
	if !ok {
		tp = NewTopicProgress()
		all[topicID] = tp
	}
	oldLevel := tp.Level

	if len(results) == 0 {
		out := newSetOutcome(topicID, tp, oldLevel, 0, 0, 0, s.streak.Load(ctx).CurrentStreak)
		err := loadErr
		if err == nil {
			err = s.repo.SaveAll(ctx, all)
		}
		if err != nil {
			out.Saved = false
			return out, fmt.Errorf("%w: %w", ErrNotSaved, err)
		}
		return out, nil
	}

	ch, inChapter := s.registry.ChapterForTopic(topicID)
	chapterBefore := 0
	if inChapter {
		chapterBefore = chapterPoints(ch, all)
	}

	correct := tp.recordAnswers(results)
	earned := SetPoints(correct, len(results))
	tp.addPoints(earned)
	tp.SetsCompleted++
	today := s.clock.Today()
	tp.LastPracticed = &today

	// Topics that could not be read are scored in memory only.
	saveErr := loadErr
	if saveErr == nil {
		saveErr = s.repo.SaveAll(ctx, all)
	}
	streakVal, streakErr := s.streak.Touch(ctx)

	out := newSetOutcome(topicID, tp, oldLevel, correct, len(results), earned, streakVal)
	out.SetID = s.newSetID()
	if inChapter {
		out.Chapter = newChapterOutcome(ch, all, chapterBefore, tp)
	}

	s.log.Debug("set recorded",
		zap.String("topic", topicID),
		zap.String("set_id", out.SetID),
		zap.Int("correct", correct),
		zap.Int("total", len(results)),
		zap.Int("points_earned", earned),
		zap.Int("level", out.NewLevel),
		zap.Int("streak", streakVal),
	)
	s.appendEvent(ctx, out)

	if err := errors.Join(saveErr, streakErr); err != nil {
		out.Saved = false
		return out, fmt.Errorf("%w: %w", ErrNotSaved, err)
	}
	return out, nil
}

// appendEvent writes the set to the event log. Failures are logged only;
// the log is never read back to compute state.
func (s *Service) appendEvent(ctx context.Context, out SetOutcome) {
	if s.events == nil {
		return
	}
	err := s.events.AppendSetEvent(ctx, store.SetEventData{
		SetID:        out.SetID,
		TopicID:      out.TopicID,
		Correct:      out.CorrectCount,
		Total:        out.TotalCount,
		PointsEarned: out.PointsEarned,
		OldLevel:     out.OldLevel,
		NewLevel:     out.NewLevel,
		Streak:       out.Streak,
	})
	if err != nil {
		s.log.Error("append set event", zap.String("set_id", out.SetID), zap.Error(err))
	}
}

// RecentSets returns logged sets, newest first. Without an event log it
// returns nothing.
func (s *Service) RecentSets(ctx context.Context, opts store.QueryOpts) ([]store.SetEvent, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events.QuerySetEvents(ctx, opts)
}

// ResetAll deletes every topic record, the streak, and the set log.
func (s *Service) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, TopicsKey, streak.Key); err != nil {
		return fmt.Errorf("reset mastery: %w", err)
	}
	if s.events != nil {
		if err := s.events.ClearSetEvents(ctx); err != nil {
			return fmt.Errorf("reset mastery: %w", err)
		}
	}
	s.log.Info("mastery reset")
	return nil
}
