package mastery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTopicMastery_ZeroState(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	got := f.svc.GetTopicMastery(ctx, "never-practiced")
	assert.Equal(t, TopicMastery{
		TopicID:      "never-practiced",
		LevelName:    "Starting",
		PointsToNext: 2,
	}, got)
	assert.Equal(t, 0, f.blobs.Saves(), "query does not persist")
}

func TestGetTopicMastery_AfterPractice(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.RecordSetResult(ctx, "cad", answers("q", 8, 10))
	require.NoError(t, err)
	_, err = f.svc.RecordSetResult(ctx, "cad", answers("r", 5, 10))
	require.NoError(t, err)

	got := f.svc.GetTopicMastery(ctx, "cad")
	assert.Equal(t, 2, got.Points)
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, "Beginner", got.LevelName)
	assert.Equal(t, 20, got.TotalQuestionsAnswered)
	assert.Equal(t, 13, got.TotalCorrect)
	assert.Equal(t, 65, got.Accuracy)
	assert.Equal(t, 2, got.SetsCompleted)
	assert.Equal(t, 4, got.PointsToNext)
	require.NotNil(t, got.LastPracticed)
}

// seedTopics writes topic records directly with the given points.
func seedTopics(t *testing.T, f *fixture, points map[string]int) {
	t.Helper()
	topics := make(map[string]*TopicProgress, len(points))
	for id, p := range points {
		tp := NewTopicProgress()
		tp.Points = p
		tp.Level = Level(p)
		tp.TotalQuestionsAnswered = 10
		tp.TotalCorrect = 5
		tp.SetsCompleted = 1
		topics[id] = tp
	}
	require.NoError(t, f.svc.Repository().SaveAll(context.Background(), topics))
}

func TestGetChapterMastery(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	// levels: a=2, b=3, c=5
	seedTopics(t, f, map[string]int{"a": 6, "b": 12, "c": 30})

	tests := []struct {
		name     string
		ids      []string
		wantAvg  float64
		wantName string
	}{
		{"empty", nil, 0, "Starting"},
		{"single", []string{"b"}, 3, "Developing"},
		{"average rounds to tenth", []string{"a", "b", "c"}, 3.3, "Developing"},
		{"unknown counts as zero", []string{"c", "zz"}, 2.5, "Familiar"},
		{"floor for name", []string{"a", "c"}, 3.5, "Developing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.svc.GetChapterMastery(ctx, tt.ids)
			assert.InDelta(t, tt.wantAvg, got.AverageLevel, 1e-9)
			assert.Equal(t, tt.wantName, got.LevelName)
			assert.Equal(t, len(tt.ids), got.TopicCount)
		})
	}
}

func TestGetOverallStats_Empty(t *testing.T) {
	f := newFixture(t, nil)
	got := f.svc.GetOverallStats(context.Background())
	assert.Equal(t, OverallStats{Weakest: []TopicRank{}, Strongest: []TopicRank{}}, got)
}

func TestGetOverallStats(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	seedTopics(t, f, map[string]int{
		"a": 6, "b": 6, "c": 80, "d": 0, "e": 12,
	})
	_, err := f.svc.Repository().EnsureAndLoad(ctx, "untouched")
	require.NoError(t, err)
	_, err = f.svc.RecordSetResult(ctx, "e", answers("q", 10, 10))
	require.NoError(t, err)

	got := f.svc.GetOverallStats(ctx)
	assert.Equal(t, 5, got.TopicsPracticed, "untouched topic is not practiced")
	assert.Equal(t, 1, got.TopicsMastered)
	assert.Equal(t, 60, got.TotalQuestionsAnswered)
	assert.Equal(t, 35, got.TotalCorrect)
	assert.Equal(t, 58, got.Accuracy)
	assert.Equal(t, 6, got.TotalSetsCompleted)
	// levels a=2 b=2 c=10 d=0 e=Level(15)=3
	assert.InDelta(t, 3.4, got.AverageLevel, 1e-9)
	assert.Equal(t, 1, got.Streak)
	require.NotNil(t, got.LastPracticedDate)

	weakest := make([]string, len(got.Weakest))
	for i, r := range got.Weakest {
		weakest[i] = r.TopicID
	}
	assert.Equal(t, []string{"d", "a", "b"}, weakest, "ties broken by topic ID")

	strongest := make([]string, len(got.Strongest))
	for i, r := range got.Strongest {
		strongest[i] = r.TopicID
	}
	assert.Equal(t, []string{"c", "e", "a"}, strongest)
	assert.Equal(t, "c", got.Strongest[0].Label, "label falls back to the ID")
}
