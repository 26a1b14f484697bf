package curriculum

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tree is the loaded curriculum with lookup indices. The tree is read-only
// after loading, so it is safe for concurrent use.
type Tree struct {
	subjects          map[string]Subject
	topics            map[string]Topic
	topicByCompetency map[string]Topic
	codeByCompetency  map[string]string
}

// Load reads the curriculum from path. A directory is scanned for
// .yaml/.yml files, each holding one subject; a single file holds a list of
// subjects.
func Load(path string) (*Tree, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat curriculum path: %w", err)
	}

	var subjects []Subject
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read curriculum dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !isYAML(e.Name()) {
				continue
			}
			var subj Subject
			if err := decodeFile(filepath.Join(path, e.Name()), &subj); err != nil {
				return nil, err
			}
			subjects = append(subjects, subj)
		}
	} else {
		if err := decodeFile(path, &subjects); err != nil {
			return nil, err
		}
	}

	return NewTree(subjects), nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// NewTree builds the lookup indices over the given subjects.
func NewTree(subjects []Subject) *Tree {
	t := &Tree{
		subjects:          make(map[string]Subject, len(subjects)),
		topics:            make(map[string]Topic),
		topicByCompetency: make(map[string]Topic),
		codeByCompetency:  make(map[string]string),
	}
	for _, subj := range subjects {
		t.subjects[subj.ID] = subj
		for _, topic := range subj.Topics {
			t.topics[topic.ID] = topic
			for _, comp := range topic.Competencies {
				t.topicByCompetency[comp.ID] = topic
				t.codeByCompetency[comp.ID] = comp.Code
			}
		}
	}
	return t
}

// Subject returns a subject by id.
func (t *Tree) Subject(id string) (Subject, bool) {
	s, ok := t.subjects[id]
	return s, ok
}

// SubjectIDs returns the ids of all loaded subjects.
func (t *Tree) SubjectIDs() []string {
	ids := make([]string, 0, len(t.subjects))
	for id := range t.subjects {
		ids = append(ids, id)
	}
	return ids
}

// Topic returns a topic by id.
func (t *Tree) Topic(id string) (Topic, bool) {
	tp, ok := t.topics[id]
	return tp, ok
}

// TopicForCompetency returns the topic owning the given competency.
func (t *Tree) TopicForCompetency(competencyID string) (Topic, bool) {
	tp, ok := t.topicByCompetency[competencyID]
	return tp, ok
}

// CompetencyCode returns the display code for a competency, falling back
// to the id when the curriculum does not name one.
func (t *Tree) CompetencyCode(competencyID string) string {
	if code, ok := t.codeByCompetency[competencyID]; ok && code != "" {
		return code
	}
	return competencyID
}
