package generator

import (
	"errors"
	"testing"

	"github.com/abhisek/examiz/internal/bank"
)

func TestAssemble_Snapshot(t *testing.T) {
	bp := standardBlueprint()
	bp.TotalItems = 1
	source := []bank.Item{{
		ID:         "q1",
		SubjectID:  "S1",
		TopicID:    "T1",
		Difficulty: bank.DifficultyEasy,
		Choices:    []string{"a", "b"},
		Answer:     bank.NewMultiSelectAnswer("a", "b"),
	}}

	a, err := Assemble(bp, source, "Unit quiz", TypeQuiz)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	// Mutating the source must not leak into the stored assessment.
	source[0].Text = "edited after generation"
	source[0].Choices[0] = "z"
	source[0].Answer.Values[0] = "z"

	got := a.Items[0]
	if got.Text != "" {
		t.Errorf("snapshot text = %q, want empty", got.Text)
	}
	if got.Choices[0] != "a" {
		t.Errorf("snapshot choice = %q, want %q", got.Choices[0], "a")
	}
	if got.Answer.Values[0] != "a" {
		t.Errorf("snapshot answer value = %q, want %q", got.Answer.Values[0], "a")
	}
}

func TestAssemble_TotalItemsInvariant(t *testing.T) {
	bp := standardBlueprint() // wants 10

	_, err := Assemble(bp, makePool(1, 1, 1)[:3], "Broken", TypeQuiz)
	var invErr *InvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("Assemble() = %v, want InvariantError", err)
	}
	if invErr.Expected != 10 || invErr.Actual != 3 {
		t.Errorf("InvariantError = %+v, want expected 10 actual 3", invErr)
	}
}

func TestAssemble_EmptyIsValid(t *testing.T) {
	bp := standardBlueprint()
	bp.TotalItems = 0

	a, err := Assemble(bp, nil, "Empty", TypeDiagnostic)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if a.TotalItems != 0 || len(a.Items) != 0 {
		t.Errorf("empty assessment has TotalItems=%d len=%d", a.TotalItems, len(a.Items))
	}
	if a.Blueprint.SubjectID != "S1" {
		t.Errorf("blueprint not embedded for provenance: %+v", a.Blueprint)
	}
}
