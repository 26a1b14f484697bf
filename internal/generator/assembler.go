package generator

import (
	"time"

	"github.com/abhisek/examiz/internal/bank"
)

// AssessmentType labels what kind of assessment a blueprint produced.
type AssessmentType string

const (
	TypeQuiz       AssessmentType = "quiz"
	TypeDiagnostic AssessmentType = "diagnostic"
	TypeExam       AssessmentType = "exam"
	TypePractice   AssessmentType = "practice"
)

// GeneratedAssessment is an ordered, immutable assessment payload. Items
// are snapshots of the bank entries at generation time, never live
// references: later edits to the bank must not retroactively alter the
// historical record. TotalItems always equals len(Items).
type GeneratedAssessment struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Type       AssessmentType  `json:"type"`
	SubjectID  string          `json:"subject_id"`
	Blueprint  Blueprint       `json:"blueprint"`
	Items      []bank.Item     `json:"items"`
	TotalItems int             `json:"total_items"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Assemble merges the selected items into an assessment payload with the
// originating blueprint attached for provenance. Fails with
// *InvariantError if the selection size disagrees with the blueprint.
func Assemble(bp Blueprint, selected []bank.Item, title string, typ AssessmentType) (*GeneratedAssessment, error) {
	if len(selected) != bp.TotalItems {
		return nil, &InvariantError{Expected: bp.TotalItems, Actual: len(selected)}
	}
	return &GeneratedAssessment{
		Title:      title,
		Type:       typ,
		SubjectID:  bp.SubjectID,
		Blueprint:  bp,
		Items:      snapshotItems(selected),
		TotalItems: len(selected),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// snapshotItems deep-copies the selected items so the assessment owns its
// own data.
func snapshotItems(items []bank.Item) []bank.Item {
	out := make([]bank.Item, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Choices = append([]string(nil), it.Choices...)
		out[i].Answer.Values = append([]string(nil), it.Answer.Values...)
		out[i].Answer.Sequence = append([]string(nil), it.Answer.Sequence...)
	}
	return out
}
