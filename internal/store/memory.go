package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/examiz/internal/analytics"
	"github.com/abhisek/examiz/internal/bank"
	"github.com/abhisek/examiz/internal/generator"
)

// Memory is an in-memory implementation of the repository surface. It
// backs tests and throwaway environments where no SQLite file is wanted;
// it mirrors the same interfaces the ent-backed repos satisfy.
type Memory struct {
	mu          sync.RWMutex
	items       map[string]bank.Item
	assessments map[string]generator.GeneratedAssessment
	submissions []analytics.Submission
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		items:       make(map[string]bank.Item),
		assessments: make(map[string]generator.GeneratedAssessment),
	}
}

// ItemsBySubject satisfies bank.Source.
func (m *Memory) ItemsBySubject(_ context.Context, subjectID string) ([]bank.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []bank.Item
	for _, it := range m.items {
		if it.SubjectID == subjectID {
			out = append(out, it)
		}
	}
	return out, nil
}

// Insert validates and stores an item.
func (m *Memory) Insert(_ context.Context, it bank.Item) error {
	if err := bank.ValidateItem(it); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[it.ID] = it
	return nil
}

// InsertAssessment satisfies generator.AssessmentWriter.
func (m *Memory) InsertAssessment(_ context.Context, a *generator.GeneratedAssessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assessments[a.ID] = *a
	return nil
}

// Assessment satisfies analytics.AssessmentSource.
func (m *Memory) Assessment(_ context.Context, id string) (*generator.GeneratedAssessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.assessments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// Append stores a submission, assigning identity and timestamp when
// missing.
func (m *Memory) Append(_ context.Context, sub analytics.Submission) (string, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions = append(m.submissions, sub)
	return sub.ID, nil
}

// SubmissionsByUserSubject satisfies analytics.SubmissionSource.
func (m *Memory) SubmissionsByUserSubject(_ context.Context, userID, subjectID string) ([]analytics.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []analytics.Submission
	for _, s := range m.submissions {
		if s.UserID == userID && s.SubjectID == subjectID {
			out = append(out, s)
		}
	}
	return out, nil
}

// SubmissionsByUser satisfies analytics.SubmissionSource.
func (m *Memory) SubmissionsByUser(_ context.Context, userID string) ([]analytics.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []analytics.Submission
	for _, s := range m.submissions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}
