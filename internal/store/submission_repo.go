package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/submission"
	"github.com/abhisek/examiz/internal/analytics"
)

// SubmissionRepo provides append and scan access to the submission
// history. Submissions are append-only: there is no update path.
type SubmissionRepo struct {
	client *ent.Client
}

// Append stores a new submission, assigning an id and timestamp when the
// caller left them empty. Returns the stored submission id.
func (r *SubmissionRepo) Append(ctx context.Context, sub analytics.Submission) (string, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}

	answers, err := json.Marshal(sub.Answers)
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}

	builder := r.client.Submission.Create().
		SetSubmissionID(sub.ID).
		SetUserID(sub.UserID).
		SetSubjectID(sub.SubjectID).
		SetAnswers(answers).
		SetScore(sub.Score).
		SetTotalItems(sub.TotalItems).
		SetSubmittedAt(sub.SubmittedAt)

	if sub.AssessmentID != "" {
		builder = builder.SetAssessmentID(sub.AssessmentID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return "", unavailable("append submission", err)
	}
	return sub.ID, nil
}

// SubmissionsByUserSubject returns the student's submissions for one
// subject in submission order. Satisfies analytics.SubmissionSource.
func (r *SubmissionRepo) SubmissionsByUserSubject(ctx context.Context, userID, subjectID string) ([]analytics.Submission, error) {
	rows, err := r.client.Submission.Query().
		Where(
			submission.UserID(userID),
			submission.SubjectID(subjectID),
		).
		Order(ent.Asc(submission.FieldSubmittedAt)).
		All(ctx)
	if err != nil {
		return nil, unavailable("query submissions", err)
	}
	return toSubmissions(rows)
}

// SubmissionsByUser returns the student's full submission history across
// all subjects in submission order.
func (r *SubmissionRepo) SubmissionsByUser(ctx context.Context, userID string) ([]analytics.Submission, error) {
	rows, err := r.client.Submission.Query().
		Where(submission.UserID(userID)).
		Order(ent.Asc(submission.FieldSubmittedAt)).
		All(ctx)
	if err != nil {
		return nil, unavailable("query submissions", err)
	}
	return toSubmissions(rows)
}

// Count returns the number of stored submissions.
func (r *SubmissionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Submission.Query().Count(ctx)
	if err != nil {
		return 0, unavailable("count submissions", err)
	}
	return n, nil
}

func toSubmissions(rows []*ent.Submission) ([]analytics.Submission, error) {
	out := make([]analytics.Submission, 0, len(rows))
	for _, row := range rows {
		var answers []analytics.SubmissionAnswer
		if err := json.Unmarshal(row.Answers, &answers); err != nil {
			return nil, fmt.Errorf("decode answers for %s: %w", row.SubmissionID, err)
		}
		out = append(out, analytics.Submission{
			ID:           row.SubmissionID,
			UserID:       row.UserID,
			AssessmentID: row.AssessmentID,
			SubjectID:    row.SubjectID,
			Answers:      answers,
			Score:        row.Score,
			TotalItems:   row.TotalItems,
			SubmittedAt:  row.SubmittedAt,
		})
	}
	return out, nil
}
