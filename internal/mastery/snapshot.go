package mastery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizmastery/internal/calendar"
)

// TopicsKey is the store key of the topic map document.
const TopicsKey = "mastery/topics"

// documentVersion is written with every save.
const documentVersion = 2

// topicsDocument is the persisted form of all topic records.
type topicsDocument struct {
	Version int                       `json:"version"`
	Topics  map[string]*TopicProgress `json:"topics"`
}

// legacyTopic is a record from the flat layout, where topic IDs sit at the
// top level next to a "_version" marker and fields are camelCase.
type legacyTopic struct {
	Points                 int                      `json:"points"`
	TotalQuestionsAnswered int                      `json:"totalQuestionsAnswered"`
	TotalCorrect           int                      `json:"totalCorrect"`
	SetsCompleted          int                      `json:"setsCompleted"`
	QuestionHistory        map[string]legacyHistory `json:"questionHistory"`
	LastPracticed          *calendar.Date           `json:"lastPracticed"`
}

type legacyHistory struct {
	Seen         bool   `json:"seen"`
	LastResult   Result `json:"lastResult"`
	TimesSeen    int    `json:"timesSeen"`
	TimesCorrect int    `json:"timesCorrect"`
}

func encodeTopics(topics map[string]*TopicProgress) ([]byte, error) {
	return json.Marshal(topicsDocument{Version: documentVersion, Topics: topics})
}

// decodeTopics parses a topic document in either the current or the legacy
// flat layout. Every returned record is normalized.
func decodeTopics(raw []byte) (map[string]*TopicProgress, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}

	var topics map[string]*TopicProgress
	if _, ok := probe["topics"]; ok {
		var doc topicsDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode topics: %w", err)
		}
		topics = doc.Topics
	} else {
		migrated, err := migrateLegacy(probe)
		if err != nil {
			return nil, err
		}
		topics = migrated
	}

	if topics == nil {
		topics = make(map[string]*TopicProgress)
	}
	for id, tp := range topics {
		if tp == nil {
			tp = NewTopicProgress()
			topics[id] = tp
		}
		tp.normalize()
	}
	return topics, nil
}

// migrateLegacy converts the flat layout. Keys starting with "_" are metadata.
func migrateLegacy(probe map[string]json.RawMessage) (map[string]*TopicProgress, error) {
	topics := make(map[string]*TopicProgress, len(probe))
	for id, msg := range probe {
		if strings.HasPrefix(id, "_") {
			continue
		}
		var old legacyTopic
		if err := json.Unmarshal(msg, &old); err != nil {
			return nil, fmt.Errorf("decode legacy topic %q: %w", id, err)
		}
		tp := &TopicProgress{
			Points:                 old.Points,
			TotalQuestionsAnswered: old.TotalQuestionsAnswered,
			TotalCorrect:           old.TotalCorrect,
			SetsCompleted:          old.SetsCompleted,
			QuestionHistory:        make(map[string]QuestionHistoryEntry, len(old.QuestionHistory)),
			LastPracticed:          old.LastPracticed,
		}
		for qid, h := range old.QuestionHistory {
			tp.QuestionHistory[qid] = QuestionHistoryEntry(h)
		}
		topics[id] = tp
	}
	return topics, nil
}

// normalize repairs a loaded record: counters are clamped at zero and the
// level is always re-derived from points.
func (tp *TopicProgress) normalize() {
	tp.Points = max(tp.Points, 0)
	tp.TotalQuestionsAnswered = max(tp.TotalQuestionsAnswered, 0)
	tp.TotalCorrect = min(max(tp.TotalCorrect, 0), tp.TotalQuestionsAnswered)
	tp.SetsCompleted = max(tp.SetsCompleted, 0)
	tp.Level = Level(tp.Points)
	if tp.QuestionHistory == nil {
		tp.QuestionHistory = make(map[string]QuestionHistoryEntry)
	}
	if tp.LastPracticed != nil && !tp.LastPracticed.IsValid() {
		tp.LastPracticed = nil
	}
}
