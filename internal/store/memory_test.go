package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examiz/internal/analytics"
	"github.com/abhisek/examiz/internal/bank"
	"github.com/abhisek/examiz/internal/curriculum"
	"github.com/abhisek/examiz/internal/generator"
)

func seedItems(t *testing.T, m *Memory, easy, moderate, difficult int) {
	t.Helper()
	ctx := context.Background()
	n := 0
	add := func(d bank.Difficulty, count int) {
		for i := 0; i < count; i++ {
			n++
			err := m.Insert(ctx, bank.Item{
				ID:             fmt.Sprintf("item-%d", n),
				SubjectID:      "S1",
				TopicID:        "T1",
				CompetencyID:   "C1",
				Type:           bank.TypeSingleChoice,
				Difficulty:     d,
				CognitiveLevel: bank.LevelRemembering,
				Text:           fmt.Sprintf("Question %d", n),
				Choices:        []string{"a", "b", "c"},
				Answer:         bank.NewSingleChoiceAnswer("a"),
			})
			require.NoError(t, err)
		}
	}
	add(bank.DifficultyEasy, easy)
	add(bank.DifficultyModerate, moderate)
	add(bank.DifficultyDifficult, difficult)
}

func TestMemory_RejectsInvalidItem(t *testing.T) {
	m := NewMemory()
	err := m.Insert(context.Background(), bank.Item{
		ID:             "bad",
		SubjectID:      "S1",
		CompetencyID:   "C1",
		Type:           bank.TypeSingleChoice,
		Difficulty:     bank.DifficultyEasy,
		CognitiveLevel: bank.LevelCreating, // not allowed for single choice
		Choices:        []string{"a", "b"},
		Answer:         bank.NewSingleChoiceAnswer("a"),
	})
	assert.Error(t, err)

	items, err := m.ItemsBySubject(context.Background(), "S1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Full chain over the in-memory store: seed the bank, generate an
// assessment, record submissions against it, run the diagnostic.
func TestMemory_GenerateThenDiagnose(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	seedItems(t, m, 4, 5, 4)

	gen := generator.NewService(bank.NewAccessor(m), m, generator.NewSeededSelector(42), nil)
	assessment, err := gen.Generate(ctx, generator.GenerateRequest{
		Blueprint: generator.Blueprint{
			SubjectID:    "S1",
			TargetTopics: []string{"T1"},
			TotalItems:   10,
			EasyPct:      0.3,
			ModeratePct:  0.4,
			DifficultPct: 0.3,
		},
		Title: "Midterm diagnostic",
		Type:  generator.TypeDiagnostic,
	})
	require.NoError(t, err)
	require.Equal(t, 10, assessment.TotalItems)

	stored, err := m.Assessment(ctx, assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, assessment.Items, stored.Items)

	// One perfect and one failed attempt on the same competency.
	answersFor := func(correct bool) []analytics.SubmissionAnswer {
		out := make([]analytics.SubmissionAnswer, 0, len(assessment.Items))
		for _, it := range assessment.Items {
			out = append(out, analytics.SubmissionAnswer{
				QuestionID:   it.ID,
				CompetencyID: it.CompetencyID,
				TopicID:      it.TopicID,
				Correct:      correct,
			})
		}
		return out
	}
	now := time.Now()
	_, err = m.Append(ctx, analytics.Submission{
		UserID: "u1", AssessmentID: assessment.ID, SubjectID: "S1",
		Answers: answersFor(true), Score: 100, TotalItems: 10,
		SubmittedAt: now.AddDate(0, 0, -10),
	})
	require.NoError(t, err)
	_, err = m.Append(ctx, analytics.Submission{
		UserID: "u1", AssessmentID: assessment.ID, SubjectID: "S1",
		Answers: answersFor(false), Score: 0, TotalItems: 10,
		SubmittedAt: now.AddDate(0, 0, -5),
	})
	require.NoError(t, err)

	tree := curriculum.NewTree([]curriculum.Subject{{
		ID: "S1",
		Topics: []curriculum.Topic{{
			ID:           "T1",
			Name:         "Topic one",
			Content:      "material",
			Competencies: []curriculum.Competency{{ID: "C1", Code: "S1-1"}},
		}},
	}})
	svc := analytics.NewService(m, m, tree, nil, nil, nil)

	report, err := svc.Diagnose(ctx, "u1", "S1")
	require.NoError(t, err)
	require.Len(t, report.Competencies, 1)
	assert.InDelta(t, 50.0, report.Competencies[0].MasteryPercentage, 0.001)
	assert.Equal(t, analytics.StatusDeveloping, report.Competencies[0].Status)
	assert.Equal(t, analytics.RiskMedium, report.Competencies[0].Risk)
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, "T1", report.Recommendations[0].TopicID)
}

func TestMemory_AbsentAssessment(t *testing.T) {
	m := NewMemory()
	a, err := m.Assessment(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, a)
}
