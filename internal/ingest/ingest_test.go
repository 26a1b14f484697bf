package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/examiz/internal/bank"
)

type collectWriter struct {
	items []bank.Item
}

func (w *collectWriter) Insert(_ context.Context, it bank.Item) error {
	w.items = append(w.items, it)
	return nil
}

const importDoc = `[
  {
    "id": "q1",
    "subject_id": "S1",
    "topic_id": "T1",
    "competency_id": "C1",
    "type": "single_choice",
    "difficulty": "easy",
    "cognitive_level": "remembering",
    "text": "What is the powerhouse of the cell?",
    "choices": ["nucleus", "mitochondria", "ribosome"],
    "answer": "mitochondria"
  },
  {
    "id": "q2",
    "subject_id": "S1",
    "competency_id": "C1",
    "type": "true_false",
    "difficulty": "easy",
    "cognitive_level": "understanding",
    "text": "DNA lives in the nucleus.",
    "answer": true
  },
  {
    "id": "q3",
    "subject_id": "S1",
    "competency_id": "C2",
    "type": "multi_select",
    "difficulty": "difficult",
    "cognitive_level": "remembering",
    "text": "Select the organelles.",
    "choices": ["nucleus", "ribosome", "gravity"],
    "answer": ["nucleus", "ribosome"]
  }
]`

func TestRun_MixedValidity(t *testing.T) {
	w := &collectWriter{}
	report, err := Run(context.Background(), strings.NewReader(importDoc), w)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("report has %d results, want 3", len(report.Results))
	}

	// q1 and q2 are valid; q3 pairs multi_select with remembering, which
	// the taxonomy rules reject.
	if !report.Results[0].OK || !report.Results[1].OK {
		t.Errorf("valid items rejected: %+v", report.Results[:2])
	}
	if report.Results[2].OK {
		t.Error("q3 should fail taxonomy validation")
	}
	if report.Results[2].Reason == "" {
		t.Error("failed item carries no reason")
	}
	if report.Inserted != 2 || len(w.items) != 2 {
		t.Errorf("inserted %d items (writer saw %d), want 2", report.Inserted, len(w.items))
	}
	if w.items[0].Answer.Kind != bank.AnswerSingle {
		t.Errorf("q1 answer kind = %q, want %q", w.items[0].Answer.Kind, bank.AnswerSingle)
	}
}

func TestValidate_DoesNotPersist(t *testing.T) {
	report, err := Validate(context.Background(), strings.NewReader(importDoc))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.Inserted != 0 {
		t.Errorf("Validate() inserted %d items, want 0", report.Inserted)
	}
}

func TestRun_RejectsMalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not JSON", "{{{"},
		{"missing required field", `[{"id": "q1"}]`},
		{"wrong difficulty enum", `[{
			"id": "q1", "subject_id": "S1", "competency_id": "C1",
			"type": "single_choice", "difficulty": "impossible",
			"cognitive_level": "remembering", "text": "x", "answer": "a"
		}]`},
		{"unexpected field", `[{
			"id": "q1", "subject_id": "S1", "competency_id": "C1",
			"type": "single_choice", "difficulty": "easy",
			"cognitive_level": "remembering", "text": "x", "answer": "a",
			"points": 5
		}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run(context.Background(), strings.NewReader(tt.doc), &collectWriter{}); err == nil {
				t.Error("Run() accepted a malformed document")
			}
		})
	}
}

func TestRun_WrongAnswerShape(t *testing.T) {
	doc := `[{
		"id": "q1", "subject_id": "S1", "competency_id": "C1",
		"type": "true_false", "difficulty": "easy",
		"cognitive_level": "remembering", "text": "x",
		"answer": "yes"
	}]`
	w := &collectWriter{}
	report, err := Run(context.Background(), strings.NewReader(doc), w)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Results[0].OK {
		t.Error("string answer on a true/false item should fail")
	}
	if len(w.items) != 0 {
		t.Error("invalid item was persisted")
	}
}
