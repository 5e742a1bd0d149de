package mastery

import (
	"context"

	"github.com/abhisek/quizmastery/internal/quizbank"
)

// TopicCap returns the most points one topic may contribute to its chapter:
// the top threshold split evenly across available topics, rounded up.
func TopicCap(ch quizbank.Chapter) int {
	n := len(ch.AvailableTopics())
	top := Thresholds[MaxLevel]
	if n == 0 {
		return top
	}
	return (top + n - 1) / n
}

// TopicContribution is one topic's share of a chapter's points.
type TopicContribution struct {
	TopicID      string `json:"topic_id"`
	Label        string `json:"label"`
	RawPoints    int    `json:"raw_points"`
	CappedPoints int    `json:"capped_points"`
	AtCap        bool   `json:"at_cap"`
}

// ChapterProgress is a chapter's mastery computed from capped topic points.
type ChapterProgress struct {
	ChapterID      string              `json:"chapter_id"`
	Label          string              `json:"label"`
	Level          int                 `json:"level"`
	LevelName      string              `json:"level_name"`
	Points         int                 `json:"points"`
	TopicCap       int                 `json:"topic_cap"`
	PointsToNext   int                 `json:"points_to_next"`
	Topics         []TopicContribution `json:"topics"`
	AvailableCount int                 `json:"available_count"`
	TotalCount     int                 `json:"total_count"`
}

func chapterPoints(ch quizbank.Chapter, topics map[string]*TopicProgress) int {
	limit := TopicCap(ch)
	total := 0
	for _, t := range ch.AvailableTopics() {
		if tp, ok := topics[t.ID]; ok {
			total += min(tp.Points, limit)
		}
	}
	return total
}

func buildChapterProgress(ch quizbank.Chapter, topics map[string]*TopicProgress) ChapterProgress {
	limit := TopicCap(ch)
	available := ch.AvailableTopics()
	cp := ChapterProgress{
		ChapterID:      ch.ID,
		Label:          ch.Label,
		TopicCap:       limit,
		Topics:         make([]TopicContribution, 0, len(available)),
		AvailableCount: len(available),
		TotalCount:     len(ch.Topics),
	}
	for _, t := range available {
		raw := 0
		if tp, ok := topics[t.ID]; ok {
			raw = tp.Points
		}
		capped := min(raw, limit)
		cp.Points += capped
		cp.Topics = append(cp.Topics, TopicContribution{
			TopicID:      t.ID,
			Label:        t.Label,
			RawPoints:    raw,
			CappedPoints: capped,
			AtCap:        raw >= limit,
		})
	}
	cp.Level = Level(cp.Points)
	cp.LevelName = LevelName(cp.Level)
	cp.PointsToNext = PointsToNext(cp.Points)
	return cp
}

func newChapterOutcome(ch quizbank.Chapter, topics map[string]*TopicProgress, before int, tp *TopicProgress) *ChapterOutcome {
	limit := TopicCap(ch)
	after := chapterPoints(ch, topics)
	capped := min(tp.Points, limit)
	oldLevel, newLevel := Level(before), Level(after)
	return &ChapterOutcome{
		ChapterID:            ch.ID,
		ChapterLabel:         ch.Label,
		TopicCap:             limit,
		CappedTopicPoints:    capped,
		TopicAtCap:           capped >= limit,
		ChapterPoints:        after,
		OldChapterLevel:      oldLevel,
		NewChapterLevel:      newLevel,
		ChapterLeveledUp:     newLevel > oldLevel,
		ChapterLevelName:     LevelName(newLevel),
		ChapterPointsToNext:  PointsToNext(after),
		EffectiveChapterGain: after - before,
	}
}

// GetChapterProgress returns capped mastery for a registry chapter.
// An unknown chapter, or a service without a registry, yields the zero state.
func (s *Service) GetChapterProgress(ctx context.Context, chapterID string) ChapterProgress {
	ch, ok := s.registry.Chapter(chapterID)
	if !ok {
		limit := Thresholds[MaxLevel]
		return ChapterProgress{
			ChapterID:    chapterID,
			LevelName:    LevelName(0),
			TopicCap:     limit,
			PointsToNext: PointsToNext(0),
			Topics:       []TopicContribution{},
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return buildChapterProgress(ch, s.repo.LoadAll(ctx))
}

// ChaptersInProgress counts registry chapters with at least one practiced topic.
func (s *Service) ChaptersInProgress(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chaptersInProgress(s.repo.LoadAll(ctx))
}

func (s *Service) chaptersInProgress(topics map[string]*TopicProgress) int {
	if s.registry == nil {
		return 0
	}
	n := 0
	for _, ch := range s.registry.Chapters {
		for _, t := range ch.Topics {
			if tp, ok := topics[t.ID]; ok && tp.SetsCompleted > 0 {
				n++
				break
			}
		}
	}
	return n
}
