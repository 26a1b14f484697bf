package analytics

import "fmt"

// InsufficientDataError indicates the student has no submissions in scope.
// Distinct from a computed zero score: "never assessed" must not read as
// "assessed and failing".
type InsufficientDataError struct {
	UserID    string
	SubjectID string
}

func (e *InsufficientDataError) Error() string {
	if e.SubjectID == "" {
		return fmt.Sprintf("insufficient data: no submissions for user %s", e.UserID)
	}
	return fmt.Sprintf("insufficient data: no submissions for user %s in subject %s", e.UserID, e.SubjectID)
}
