package quizbank

// Registry lists every chapter and its topics.
type Registry struct {
	Chapters []Chapter `json:"chapters"`
}

// Chapter groups related topics.
type Chapter struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Topics []Topic `json:"topics"`
}

// Topic is a registry entry. File is empty until questions exist for it.
type Topic struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	File     string `json:"file,omitempty"`
	HasGuide bool   `json:"has_guide,omitempty"`
}

// Available reports whether the topic has a question file.
func (t Topic) Available() bool {
	return t.File != ""
}

// AvailableTopics returns the topics that have questions.
func (c Chapter) AvailableTopics() []Topic {
	var out []Topic
	for _, t := range c.Topics {
		if t.Available() {
			out = append(out, t)
		}
	}
	return out
}

// TopicIDs returns the IDs of all topics in the chapter, in registry order.
func (c Chapter) TopicIDs() []string {
	ids := make([]string, len(c.Topics))
	for i, t := range c.Topics {
		ids[i] = t.ID
	}
	return ids
}

// Chapter looks up a chapter by ID.
func (r *Registry) Chapter(id string) (Chapter, bool) {
	if r == nil {
		return Chapter{}, false
	}
	for _, c := range r.Chapters {
		if c.ID == id {
			return c, true
		}
	}
	return Chapter{}, false
}

// ChapterForTopic returns the chapter that contains topicID.
func (r *Registry) ChapterForTopic(topicID string) (Chapter, bool) {
	if r == nil {
		return Chapter{}, false
	}
	for _, c := range r.Chapters {
		for _, t := range c.Topics {
			if t.ID == topicID {
				return c, true
			}
		}
	}
	return Chapter{}, false
}

// TopicLabel returns the display label for topicID, or the ID itself if unknown.
func (r *Registry) TopicLabel(topicID string) string {
	if r == nil {
		return topicID
	}
	for _, c := range r.Chapters {
		for _, t := range c.Topics {
			if t.ID == topicID && t.Label != "" {
				return t.Label
			}
		}
	}
	return topicID
}
