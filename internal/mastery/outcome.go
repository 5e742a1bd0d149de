package mastery

// SetOutcome reports the effect of one recorded set.
type SetOutcome struct {
	SetID        string `json:"set_id,omitempty"`
	TopicID      string `json:"topic_id"`
	CorrectCount int    `json:"correct_count"`
	TotalCount   int    `json:"total_count"`
	Accuracy     int    `json:"accuracy"`
	PointsEarned int    `json:"points_earned"`
	NewPoints    int    `json:"new_points"`
	OldLevel     int    `json:"old_level"`
	NewLevel     int    `json:"new_level"`
	LeveledUp    bool   `json:"leveled_up"`
	LevelName    string `json:"level_name"`
	PointsToNext int    `json:"points_to_next"`
	Streak       int    `json:"streak"`

	// Saved is false when any part of the update failed to persist.
	Saved bool `json:"saved"`

	// Chapter is set when the registry knows the topic's chapter.
	Chapter *ChapterOutcome `json:"chapter,omitempty"`
}

// ChapterOutcome is the chapter-level view of a recorded set, where each
// topic contributes at most TopicCap points.
type ChapterOutcome struct {
	ChapterID            string `json:"chapter_id"`
	ChapterLabel         string `json:"chapter_label"`
	TopicCap             int    `json:"topic_cap"`
	CappedTopicPoints    int    `json:"capped_topic_points"`
	TopicAtCap           bool   `json:"topic_at_cap"`
	ChapterPoints        int    `json:"chapter_points"`
	OldChapterLevel      int    `json:"old_chapter_level"`
	NewChapterLevel      int    `json:"new_chapter_level"`
	ChapterLeveledUp     bool   `json:"chapter_leveled_up"`
	ChapterLevelName     string `json:"chapter_level_name"`
	ChapterPointsToNext  int    `json:"chapter_points_to_next"`
	EffectiveChapterGain int    `json:"effective_chapter_gain"`
}

func newSetOutcome(topicID string, tp *TopicProgress, oldLevel, correct, total, earned, streak int) SetOutcome {
	return SetOutcome{
		TopicID:      topicID,
		CorrectCount: correct,
		TotalCount:   total,
		Accuracy:     Percent(correct, total),
		PointsEarned: earned,
		NewPoints:    tp.Points,
		OldLevel:     oldLevel,
		NewLevel:     tp.Level,
		LeveledUp:    tp.Level > oldLevel,
		LevelName:    LevelName(tp.Level),
		PointsToNext: tp.PointsToNext(),
		Streak:       streak,
		Saved:        true,
	}
}
