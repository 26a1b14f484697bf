package analytics

import "time"

// SubmissionAnswer is one answered question inside a submission. TopicID
// may be empty when the client did not resolve it; CompetencyID may be
// empty for legacy rows, in which case the answer is skipped during
// aggregation.
type SubmissionAnswer struct {
	QuestionID   string `json:"question_id"`
	CompetencyID string `json:"competency_id"`
	TopicID      string `json:"topic_id,omitempty"`
	Correct      bool   `json:"correct"`
}

// Submission records one completed assessment attempt. Submissions are
// append-only: they are never edited after creation, which keeps the full
// history auditable for analytics.
type Submission struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	AssessmentID string             `json:"assessment_id"`
	SubjectID    string             `json:"subject_id"`
	Answers      []SubmissionAnswer `json:"answers"`
	Score        float64            `json:"score"` // percentage, 0-100
	TotalItems   int                `json:"total_items"`
	SubmittedAt  time.Time          `json:"submitted_at"`
}
