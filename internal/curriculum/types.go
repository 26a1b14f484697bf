package curriculum

// Competency is the finest-grained curriculum unit. Items and mastery are
// both scored against competencies.
type Competency struct {
	ID   string `yaml:"id"`
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Topic groups competencies and carries the instructional content a
// recommendation points the student at.
type Topic struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Content      string       `yaml:"content"`
	Competencies []Competency `yaml:"competencies"`
}

// HasContent reports whether the topic carries instructional material.
// Only content-backed topics are eligible for recommendations.
func (t Topic) HasContent() bool {
	return t.Content != ""
}

// Subject is the root of one curriculum tree.
type Subject struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Topics []Topic `yaml:"topics"`
}
