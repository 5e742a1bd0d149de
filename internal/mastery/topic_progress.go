package mastery

import "github.com/abhisek/quizmastery/internal/calendar"

// TopicProgress holds all mastery data for a single topic.
type TopicProgress struct {
	Points                 int                             `json:"points"`
	Level                  int                             `json:"level"`
	TotalQuestionsAnswered int                             `json:"total_questions_answered"`
	TotalCorrect           int                             `json:"total_correct"`
	SetsCompleted          int                             `json:"sets_completed"`
	QuestionHistory        map[string]QuestionHistoryEntry `json:"question_history"`
	LastPracticed          *calendar.Date                  `json:"last_practiced"`
}

// NewTopicProgress returns the zero record for a topic never practiced.
func NewTopicProgress() *TopicProgress {
	return &TopicProgress{QuestionHistory: make(map[string]QuestionHistoryEntry)}
}

// Accuracy returns the cumulative accuracy as a whole percentage.
func (tp *TopicProgress) Accuracy() int {
	return Percent(tp.TotalCorrect, tp.TotalQuestionsAnswered)
}

// PointsToNext returns the distance to the next level threshold.
func (tp *TopicProgress) PointsToNext() int {
	return PointsToNext(tp.Points)
}

// recordAnswers applies one set's answers to the counters and question
// history and returns how many were correct. Points are not touched.
func (tp *TopicProgress) recordAnswers(results []AnswerResult) int {
	if tp.QuestionHistory == nil {
		tp.QuestionHistory = make(map[string]QuestionHistoryEntry)
	}

	correct := 0
	for _, r := range results {
		tp.TotalQuestionsAnswered++
		if r.Correct {
			tp.TotalCorrect++
			correct++
		}

		h := tp.QuestionHistory[r.QuestionID]
		h.Seen = true
		h.LastResult = ResultOf(r.Correct)
		h.TimesSeen++
		if r.Correct {
			h.TimesCorrect++
		}
		tp.QuestionHistory[r.QuestionID] = h
	}
	return correct
}

// addPoints accumulates earned points and re-derives the level.
// Negative input is ignored so points never decrease.
func (tp *TopicProgress) addPoints(earned int) {
	if earned > 0 {
		tp.Points += earned
	}
	tp.Level = Level(tp.Points)
}
