package analytics

import (
	"testing"

	"github.com/abhisek/examiz/internal/bank"
)

func TestAggregate_Tallies(t *testing.T) {
	subs := []Submission{
		{
			Answers: []SubmissionAnswer{
				{QuestionID: "q1", CompetencyID: "C1", Correct: true},
				{QuestionID: "q2", CompetencyID: "C1", Correct: false},
				{QuestionID: "q3", CompetencyID: "C2", Correct: true},
			},
		},
		{
			Answers: []SubmissionAnswer{
				{QuestionID: "q1", CompetencyID: "C1", Correct: true},
			},
		},
	}

	byComp, _ := Aggregate(subs, nil)
	if got := byComp["C1"]; got.Correct != 2 || got.Total != 3 {
		t.Errorf("C1 tally = %+v, want 2/3", got)
	}
	if got := byComp["C2"]; got.Correct != 1 || got.Total != 1 {
		t.Errorf("C2 tally = %+v, want 1/1", got)
	}
	for id, tally := range byComp {
		if tally.Correct > tally.Total {
			t.Errorf("%s: correct %d exceeds total %d", id, tally.Correct, tally.Total)
		}
	}
}

func TestAggregate_SkipsUnresolvableCompetency(t *testing.T) {
	subs := []Submission{{
		Answers: []SubmissionAnswer{
			{QuestionID: "q1", CompetencyID: "", Correct: true},
			{QuestionID: "q2", CompetencyID: "C1", Correct: true},
		},
	}}

	byComp, _ := Aggregate(subs, nil)
	if len(byComp) != 1 {
		t.Fatalf("tallied %d competencies, want 1 (blank skipped)", len(byComp))
	}
	if got := byComp["C1"]; got.Total != 1 {
		t.Errorf("C1 tally = %+v, want 1/1", got)
	}
}

func TestAggregate_BloomJoin(t *testing.T) {
	levels := map[string]bank.CognitiveLevel{
		"q1": bank.LevelRemembering,
		"q2": bank.LevelAnalyzing,
	}
	resolve := func(id string) (bank.CognitiveLevel, bool) {
		l, ok := levels[id]
		return l, ok
	}

	subs := []Submission{{
		Answers: []SubmissionAnswer{
			{QuestionID: "q1", CompetencyID: "C1", Correct: true},
			{QuestionID: "q2", CompetencyID: "C1", Correct: false},
			{QuestionID: "q-unknown", CompetencyID: "C1", Correct: true},
		},
	}}

	_, byLevel := Aggregate(subs, resolve)
	if got := byLevel[bank.LevelRemembering]; got.Correct != 1 || got.Total != 1 {
		t.Errorf("remembering tally = %+v, want 1/1", got)
	}
	if got := byLevel[bank.LevelAnalyzing]; got.Correct != 0 || got.Total != 1 {
		t.Errorf("analyzing tally = %+v, want 0/1", got)
	}
	if len(byLevel) != 2 {
		t.Errorf("tallied %d levels, want 2 (unresolvable question excluded)", len(byLevel))
	}
}

func TestAverageScore(t *testing.T) {
	if got := AverageScore(nil); got != 0 {
		t.Errorf("AverageScore(nil) = %f, want 0", got)
	}
	subs := []Submission{{Score: 100}, {Score: 0}, {Score: 50}}
	if got := AverageScore(subs); !almostEqual(got, 50) {
		t.Errorf("AverageScore = %f, want 50", got)
	}
}

func TestBuildWeaknessReport_SortedWorstFirst(t *testing.T) {
	report := BuildWeaknessReport(map[string]Tally{
		"C1": {Correct: 9, Total: 10},
		"C2": {Correct: 1, Total: 10},
		"C3": {Correct: 5, Total: 10},
	})
	if len(report) != 3 {
		t.Fatalf("report has %d entries, want 3", len(report))
	}
	want := []string{"C2", "C3", "C1"}
	for i, id := range want {
		if report[i].CompetencyID != id {
			t.Errorf("report[%d] = %s, want %s", i, report[i].CompetencyID, id)
		}
	}
}
