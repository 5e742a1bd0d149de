package mastery

// Result is the outcome of the most recent attempt at a question.
type Result string

const (
	ResultCorrect   Result = "correct"
	ResultIncorrect Result = "incorrect"
)

// ResultOf maps an answer's correctness to a Result.
func ResultOf(correct bool) Result {
	if correct {
		return ResultCorrect
	}
	return ResultIncorrect
}

// QuestionHistoryEntry is what a topic remembers about one question.
// LastResult is overwritten on every attempt; only the counters accumulate.
type QuestionHistoryEntry struct {
	Seen         bool   `json:"seen"`
	LastResult   Result `json:"last_result,omitempty"`
	TimesSeen    int    `json:"times_seen"`
	TimesCorrect int    `json:"times_correct"`
}

// AnswerResult is one answered question reported at the end of a set.
type AnswerResult struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
}
