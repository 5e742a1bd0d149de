package mastery

import (
	"cmp"
	"context"
	"math"
	"slices"

	"github.com/abhisek/quizmastery/internal/calendar"
)

// TopicMastery is the read-only view of one topic.
type TopicMastery struct {
	TopicID                string         `json:"topic_id"`
	Points                 int            `json:"points"`
	Level                  int            `json:"level"`
	LevelName              string         `json:"level_name"`
	TotalQuestionsAnswered int            `json:"total_questions_answered"`
	TotalCorrect           int            `json:"total_correct"`
	Accuracy               int            `json:"accuracy"`
	SetsCompleted          int            `json:"sets_completed"`
	LastPracticed          *calendar.Date `json:"last_practiced"`
	PointsToNext           int            `json:"points_to_next"`
}

// ChapterMastery is the average level over a group of topics.
type ChapterMastery struct {
	TopicCount   int     `json:"topic_count"`
	AverageLevel float64 `json:"average_level"`
	LevelName    string  `json:"level_name"`
}

// TopicRank is an entry in the weakest/strongest lists.
type TopicRank struct {
	TopicID string `json:"topic_id"`
	Label   string `json:"label"`
	Points  int    `json:"points"`
	Level   int    `json:"level"`
}

// OverallStats aggregates every practiced topic.
type OverallStats struct {
	TopicsPracticed        int            `json:"topics_practiced"`
	TopicsMastered         int            `json:"topics_mastered"`
	TotalQuestionsAnswered int            `json:"total_questions_answered"`
	TotalCorrect           int            `json:"total_correct"`
	Accuracy               int            `json:"accuracy"`
	TotalSetsCompleted     int            `json:"total_sets_completed"`
	AverageLevel           float64        `json:"average_level"`
	Streak                 int            `json:"streak"`
	LastPracticedDate      *calendar.Date `json:"last_practiced_date"`
	ChaptersInProgress     int            `json:"chapters_in_progress"`
	Weakest                []TopicRank    `json:"weakest"`
	Strongest              []TopicRank    `json:"strongest"`
}

// rankSize is how many topics the weakest/strongest lists hold.
const rankSize = 3

func topicMastery(topicID string, tp *TopicProgress) TopicMastery {
	return TopicMastery{
		TopicID:                topicID,
		Points:                 tp.Points,
		Level:                  tp.Level,
		LevelName:              LevelName(tp.Level),
		TotalQuestionsAnswered: tp.TotalQuestionsAnswered,
		TotalCorrect:           tp.TotalCorrect,
		Accuracy:               tp.Accuracy(),
		SetsCompleted:          tp.SetsCompleted,
		LastPracticed:          tp.LastPracticed,
		PointsToNext:           tp.PointsToNext(),
	}
}

// GetTopicMastery returns the view of topicID. A topic never practiced
// yields the zero state and nothing is written.
func (s *Service) GetTopicMastery(ctx context.Context, topicID string) TopicMastery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return topicMastery(topicID, s.repo.GetOrDefault(ctx, topicID))
}

// GetChapterMastery averages the levels of topicIDs. Unknown topics count as
// level 0. The level name is taken from the floor of the average.
func (s *Service) GetChapterMastery(ctx context.Context, topicIDs []string) ChapterMastery {
	if len(topicIDs) == 0 {
		return ChapterMastery{LevelName: LevelName(0)}
	}

	s.mu.Lock()
	all := s.repo.LoadAll(ctx)
	s.mu.Unlock()

	sum := 0
	for _, id := range topicIDs {
		if tp, ok := all[id]; ok {
			sum += tp.Level
		}
	}
	avg := float64(sum) / float64(len(topicIDs))
	return ChapterMastery{
		TopicCount:   len(topicIDs),
		AverageLevel: roundTenth(avg),
		LevelName:    LevelName(int(math.Floor(avg))),
	}
}

// GetOverallStats aggregates all topics with at least one answered question.
// Ties in the weakest/strongest lists are broken by topic ID.
func (s *Service) GetOverallStats(ctx context.Context) OverallStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.LoadAll(ctx)
	st := s.streak.Load(ctx)

	stats := OverallStats{
		Streak:             st.CurrentStreak,
		LastPracticedDate:  st.LastPracticedDate,
		ChaptersInProgress: s.chaptersInProgress(all),
		Weakest:            []TopicRank{},
		Strongest:          []TopicRank{},
	}

	var ranks []TopicRank
	levelSum := 0
	for id, tp := range all {
		if tp.TotalQuestionsAnswered == 0 {
			continue
		}
		stats.TopicsPracticed++
		if tp.Level >= MaxLevel {
			stats.TopicsMastered++
		}
		stats.TotalQuestionsAnswered += tp.TotalQuestionsAnswered
		stats.TotalCorrect += tp.TotalCorrect
		stats.TotalSetsCompleted += tp.SetsCompleted
		levelSum += tp.Level
		ranks = append(ranks, TopicRank{
			TopicID: id,
			Label:   s.registry.TopicLabel(id),
			Points:  tp.Points,
			Level:   tp.Level,
		})
	}

	stats.Accuracy = Percent(stats.TotalCorrect, stats.TotalQuestionsAnswered)
	if stats.TopicsPracticed > 0 {
		stats.AverageLevel = roundTenth(float64(levelSum) / float64(stats.TopicsPracticed))
	}

	slices.SortFunc(ranks, func(a, b TopicRank) int {
		return cmp.Or(cmp.Compare(a.Points, b.Points), cmp.Compare(a.TopicID, b.TopicID))
	})
	stats.Weakest = append(stats.Weakest, ranks[:min(rankSize, len(ranks))]...)

	slices.SortFunc(ranks, func(a, b TopicRank) int {
		return cmp.Or(cmp.Compare(b.Points, a.Points), cmp.Compare(a.TopicID, b.TopicID))
	})
	stats.Strongest = append(stats.Strongest, ranks[:min(rankSize, len(ranks))]...)

	return stats
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
