package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/examiz/internal/bank"
	"github.com/abhisek/examiz/internal/curriculum"
	"github.com/abhisek/examiz/internal/generator"
)

type fakeSubmissionSource struct {
	subs []Submission
	err  error
}

func (f *fakeSubmissionSource) SubmissionsByUserSubject(_ context.Context, userID, subjectID string) ([]Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Submission
	for _, s := range f.subs {
		if s.UserID == userID && s.SubjectID == subjectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionSource) SubmissionsByUser(_ context.Context, userID string) ([]Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Submission
	for _, s := range f.subs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAssessmentSource struct {
	assessments map[string]*generator.GeneratedAssessment
}

func (f *fakeAssessmentSource) Assessment(_ context.Context, id string) (*generator.GeneratedAssessment, error) {
	return f.assessments[id], nil
}

type memPaceCache struct {
	paces map[string]Pace
}

func (c *memPaceCache) GetPace(_ context.Context, userID string) (Pace, bool) {
	p, ok := c.paces[userID]
	return p, ok
}

func (c *memPaceCache) SetPace(_ context.Context, userID string, p Pace) error {
	if c.paces == nil {
		c.paces = make(map[string]Pace)
	}
	c.paces[userID] = p
	return nil
}

type fakePredictor struct {
	prediction *Prediction
	err        error
}

func (p *fakePredictor) Predict(_ context.Context, _ Features) (*Prediction, error) {
	return p.prediction, p.err
}

func diagnosticTree() *curriculum.Tree {
	return curriculum.NewTree([]curriculum.Subject{{
		ID:   "S1",
		Name: "Biology",
		Topics: []curriculum.Topic{{
			ID:      "T1",
			Name:    "Cells",
			Content: "material",
			Competencies: []curriculum.Competency{
				{ID: "C1", Code: "BIO-1.1"},
			},
		}},
	}})
}

// answerRun builds n answers for the same competency, all with the given
// correctness.
func answerRun(n int, competencyID string, correct bool) []SubmissionAnswer {
	out := make([]SubmissionAnswer, n)
	for i := range out {
		out[i] = SubmissionAnswer{QuestionID: "q", CompetencyID: competencyID, Correct: correct}
	}
	return out
}

func TestDiagnose_MasteryFiftyPercent(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeSubmissionSource{subs: []Submission{
		{UserID: "u1", SubjectID: "S1", Answers: answerRun(5, "C1", true), Score: 100, TotalItems: 5, SubmittedAt: now.AddDate(0, 0, -14)},
		{UserID: "u1", SubjectID: "S1", Answers: answerRun(5, "C1", false), Score: 0, TotalItems: 5, SubmittedAt: now.AddDate(0, 0, -7)},
	}}
	svc := NewService(src, &fakeAssessmentSource{}, diagnosticTree(), nil, nil, nil)
	svc.now = func() time.Time { return now }

	report, err := svc.Diagnose(context.Background(), "u1", "S1")
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if len(report.Competencies) != 1 {
		t.Fatalf("report has %d competencies, want 1", len(report.Competencies))
	}
	c := report.Competencies[0]
	if !almostEqual(c.MasteryPercentage, 50.0) {
		t.Errorf("mastery = %f, want 50.0", c.MasteryPercentage)
	}
	if c.Status != StatusDeveloping || c.Risk != RiskMedium {
		t.Errorf("band = %s/%s, want Developing/Medium", c.Status, c.Risk)
	}
	// Mastery 50 is below the recommendation ceiling, so the topic with
	// content must be recommended.
	if len(report.Recommendations) != 1 || report.Recommendations[0].TopicID != "T1" {
		t.Errorf("recommendations = %+v, want T1", report.Recommendations)
	}
	if report.Recommendations[0].Priority != 50 {
		t.Errorf("priority = %d, want 50", report.Recommendations[0].Priority)
	}
	// Two submissions: no probability bonus.
	if !almostEqual(report.PassProbability, 0.5) {
		t.Errorf("pass probability = %f, want 0.5", report.PassProbability)
	}
}

func TestDiagnose_NoSubmissionsIsInsufficientData(t *testing.T) {
	svc := NewService(&fakeSubmissionSource{}, &fakeAssessmentSource{}, diagnosticTree(), nil, nil, nil)

	_, err := svc.Diagnose(context.Background(), "u1", "S1")
	var insufficientErr *InsufficientDataError
	if !errors.As(err, &insufficientErr) {
		t.Fatalf("Diagnose() = %v, want InsufficientDataError", err)
	}
	if insufficientErr.UserID != "u1" || insufficientErr.SubjectID != "S1" {
		t.Errorf("InsufficientDataError = %+v", insufficientErr)
	}
}

func TestDiagnose_BloomJoinAgainstAssessments(t *testing.T) {
	assessments := &fakeAssessmentSource{assessments: map[string]*generator.GeneratedAssessment{
		"a1": {
			ID: "a1",
			Items: []bank.Item{
				{ID: "q1", CognitiveLevel: bank.LevelRemembering},
				{ID: "q2", CognitiveLevel: bank.LevelAnalyzing},
			},
		},
	}}
	src := &fakeSubmissionSource{subs: []Submission{{
		UserID: "u1", SubjectID: "S1", AssessmentID: "a1",
		Answers: []SubmissionAnswer{
			{QuestionID: "q1", CompetencyID: "C1", Correct: true},
			{QuestionID: "q2", CompetencyID: "C1", Correct: false},
		},
		Score: 50, TotalItems: 2, SubmittedAt: time.Now(),
	}}}
	svc := NewService(src, assessments, diagnosticTree(), nil, nil, nil)

	report, err := svc.Diagnose(context.Background(), "u1", "S1")
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if len(report.Blooms) != 2 {
		t.Fatalf("bloom breakdown has %d levels, want 2", len(report.Blooms))
	}
	// Bloom order: remembering before analyzing.
	if report.Blooms[0].Level != bank.LevelRemembering || report.Blooms[0].Correct != 1 {
		t.Errorf("blooms[0] = %+v, want remembering 1/1", report.Blooms[0])
	}
	if report.Blooms[1].Level != bank.LevelAnalyzing || report.Blooms[1].Correct != 0 {
		t.Errorf("blooms[1] = %+v, want analyzing 0/1", report.Blooms[1])
	}
}

func TestDiagnose_WritesPaceCache(t *testing.T) {
	cache := &memPaceCache{}
	src := &fakeSubmissionSource{subs: []Submission{
		{UserID: "u1", SubjectID: "S1", Answers: answerRun(1, "C1", true), Score: 100, SubmittedAt: time.Now().AddDate(0, 0, -1)},
	}}
	svc := NewService(src, &fakeAssessmentSource{}, diagnosticTree(), cache, nil, nil)

	if _, err := svc.Diagnose(context.Background(), "u1", "S1"); err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if _, ok := cache.GetPace(context.Background(), "u1"); !ok {
		t.Error("pace profile was not cached")
	}
}

func TestComprehensive_MultiSubjectWithPrediction(t *testing.T) {
	now := time.Now()
	var subs []Submission
	for i := 0; i < 6; i++ {
		subjectID := "S1"
		if i >= 3 {
			subjectID = "S2"
		}
		subs = append(subs, Submission{
			UserID: "u1", SubjectID: subjectID,
			Answers:     answerRun(4, "C1", i%2 == 0),
			Score:       80,
			SubmittedAt: now.AddDate(0, 0, -i),
		})
	}
	src := &fakeSubmissionSource{subs: subs}
	pred := &fakePredictor{prediction: &Prediction{Label: "on_track", Confidence: 0.9}}
	svc := NewService(src, &fakeAssessmentSource{}, diagnosticTree(), nil, pred, nil)

	report, err := svc.Comprehensive(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Comprehensive() error = %v", err)
	}
	if len(report.Subjects) != 2 {
		t.Fatalf("report covers %d subjects, want 2", len(report.Subjects))
	}
	// Subjects are ordered deterministically.
	if report.Subjects[0].SubjectID != "S1" || report.Subjects[1].SubjectID != "S2" {
		t.Errorf("subject order = %s, %s", report.Subjects[0].SubjectID, report.Subjects[1].SubjectID)
	}
	// Six submissions crosses the comprehensive bonus threshold of five.
	if !almostEqual(report.PassProbability, 0.85) {
		t.Errorf("pass probability = %f, want 0.85", report.PassProbability)
	}
	if report.Prediction == nil || report.Prediction.Label != "on_track" {
		t.Errorf("prediction = %+v, want on_track", report.Prediction)
	}
}

func TestComprehensive_PredictorUnavailableDegrades(t *testing.T) {
	src := &fakeSubmissionSource{subs: []Submission{
		{UserID: "u1", SubjectID: "S1", Answers: answerRun(2, "C1", true), Score: 100, SubmittedAt: time.Now()},
	}}
	pred := &fakePredictor{err: &ErrModelUnavailable{}}
	svc := NewService(src, &fakeAssessmentSource{}, diagnosticTree(), nil, pred, nil)

	report, err := svc.Comprehensive(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Comprehensive() error = %v", err)
	}
	if report.Prediction != nil {
		t.Errorf("prediction = %+v, want nil when the model is unavailable", report.Prediction)
	}
}

func TestComprehensive_NoHistory(t *testing.T) {
	svc := NewService(&fakeSubmissionSource{}, &fakeAssessmentSource{}, diagnosticTree(), nil, nil, nil)

	_, err := svc.Comprehensive(context.Background(), "u1")
	var insufficientErr *InsufficientDataError
	if !errors.As(err, &insufficientErr) {
		t.Errorf("Comprehensive() = %v, want InsufficientDataError", err)
	}
}
