package bank

import "context"

// Difficulty stratifies items into the three sampling buckets.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyModerate  Difficulty = "moderate"
	DifficultyDifficult Difficulty = "difficult"
)

// AllDifficulties returns the difficulties in bucket order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyDifficult}
}

// Valid reports whether d is one of the three known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyDifficult:
		return true
	}
	return false
}

// CognitiveLevel is one of the six ordered Bloom levels.
type CognitiveLevel string

const (
	LevelRemembering   CognitiveLevel = "remembering"
	LevelUnderstanding CognitiveLevel = "understanding"
	LevelApplying      CognitiveLevel = "applying"
	LevelAnalyzing     CognitiveLevel = "analyzing"
	LevelEvaluating    CognitiveLevel = "evaluating"
	LevelCreating      CognitiveLevel = "creating"
)

// AllLevels returns the Bloom levels in ascending order of depth.
func AllLevels() []CognitiveLevel {
	return []CognitiveLevel{
		LevelRemembering,
		LevelUnderstanding,
		LevelApplying,
		LevelAnalyzing,
		LevelEvaluating,
		LevelCreating,
	}
}

// Rank returns the 0-based position of the level in Bloom order,
// or -1 for an unknown level.
func (l CognitiveLevel) Rank() int {
	for i, lv := range AllLevels() {
		if lv == l {
			return i
		}
	}
	return -1
}

// ItemType determines the legal answer shape and compatible cognitive levels.
type ItemType string

const (
	TypeSingleChoice    ItemType = "single_choice"
	TypeMultiSelect     ItemType = "multi_select"
	TypeTrueFalse       ItemType = "true_false"
	TypeShortText       ItemType = "short_text"
	TypeFillBlank       ItemType = "fill_blank"
	TypeRationale       ItemType = "rationale"
	TypeMatching        ItemType = "matching"
	TypeOrderedSequence ItemType = "ordered_sequence"
)

// Item is a single bank entry. Items are immutable once created; only the
// Verified flag is maintained afterwards, by the authoring workflow.
type Item struct {
	ID             string         `json:"id"`
	SubjectID      string         `json:"subject_id"`
	TopicID        string         `json:"topic_id"`
	CompetencyID   string         `json:"competency_id"`
	Type           ItemType       `json:"type"`
	Difficulty     Difficulty     `json:"difficulty"`
	CognitiveLevel CognitiveLevel `json:"cognitive_level"`
	Text           string         `json:"text"`
	Choices        []string       `json:"choices,omitempty"`
	Answer         Answer         `json:"answer"`
	Verified       bool           `json:"verified"`
}

// InScope reports whether the item belongs to the given topic/competency
// scope. An item matches if either its topic id or its competency id is a
// member of the scope set. An empty scope matches everything.
func (it Item) InScope(scope map[string]struct{}) bool {
	if len(scope) == 0 {
		return true
	}
	if _, ok := scope[it.TopicID]; ok {
		return true
	}
	_, ok := scope[it.CompetencyID]
	return ok
}

// Source is the subject-scoped read capability the accessor needs from the
// backing store.
type Source interface {
	// ItemsBySubject returns every item belonging to the subject.
	ItemsBySubject(ctx context.Context, subjectID string) ([]Item, error)
}

// Accessor fetches candidate items for assessment generation.
//
// It over-fetches: the store's native filtering cannot express
// multi-valued topic membership efficiently, so the accessor pulls the whole
// subject and the selector narrows the set in memory.
type Accessor struct {
	src Source
}

// NewAccessor creates an accessor over the given item source.
func NewAccessor(src Source) *Accessor {
	return &Accessor{src: src}
}

// FetchCandidates returns all items for the subject. Topic narrowing is the
// caller's responsibility. No side effects; store failures propagate as-is.
func (a *Accessor) FetchCandidates(ctx context.Context, subjectID string) ([]Item, error) {
	return a.src.ItemsBySubject(ctx, subjectID)
}
