// Package quizbank describes question pools and the chapter/topic registry.
//
// The mastery engine only ever looks at a question's ID and topic; the rest
// of the descriptor is carried for filtering and display.
package quizbank

// Question is a question descriptor from a question bank.
type Question struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	TopicLabel string `json:"topic_label,omitempty"`
	Chapter    string `json:"category,omitempty"`
	Type       string `json:"type,omitempty"`       // single, ordering, matrix, ...
	Difficulty string `json:"difficulty,omitempty"` // knowledge, application, analysis
	Stem       string `json:"stem,omitempty"`
}

// Filter narrows a pool of questions. An empty dimension matches everything.
type Filter struct {
	Topics       []string
	Chapters     []string
	Difficulties []string
	Types        []string
}

// Match reports whether q passes every non-empty dimension of the filter.
func (f Filter) Match(q Question) bool {
	return matchAny(f.Topics, q.Topic) &&
		matchAny(f.Chapters, q.Chapter) &&
		matchAny(f.Difficulties, q.Difficulty) &&
		matchAny(f.Types, q.Type)
}

// Apply returns the questions in pool that match, preserving order.
func (f Filter) Apply(pool []Question) []Question {
	var out []Question
	for _, q := range pool {
		if f.Match(q) {
			out = append(out, q)
		}
	}
	return out
}

// Count returns how many questions in pool match.
func (f Filter) Count(pool []Question) int {
	n := 0
	for _, q := range pool {
		if f.Match(q) {
			n++
		}
	}
	return n
}

// PoolForTopic returns the candidate pool for a single topic.
func PoolForTopic(pool []Question, topicID string) []Question {
	return Filter{Topics: []string{topicID}}.Apply(pool)
}

func matchAny(allowed []string, v string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
