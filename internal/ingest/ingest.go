// Package ingest implements the bulk item import and validation entry
// point used at authoring time.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/examiz/internal/bank"
)

// ItemWriter persists validated items. *store.ItemRepo and *store.Memory
// both satisfy this.
type ItemWriter interface {
	Insert(ctx context.Context, it bank.Item) error
}

// Result is the per-item outcome of a bulk run.
type Result struct {
	ItemID string `json:"item_id"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// Report summarizes a bulk run.
type Report struct {
	Results  []Result `json:"results"`
	Inserted int      `json:"inserted"`
}

// itemDoc is the wire form of one item in an import document. The answer
// field is shape-flexible; decodeAnswer turns it into the tagged variant
// the item type expects.
type itemDoc struct {
	ID             string          `json:"id"`
	SubjectID      string          `json:"subject_id"`
	TopicID        string          `json:"topic_id"`
	CompetencyID   string          `json:"competency_id"`
	Type           string          `json:"type"`
	Difficulty     string          `json:"difficulty"`
	CognitiveLevel string          `json:"cognitive_level"`
	Text           string          `json:"text"`
	Choices        []string        `json:"choices"`
	Answer         json.RawMessage `json:"answer"`
	Verified       bool            `json:"verified"`
}

// Validate checks an import document without persisting anything.
func Validate(ctx context.Context, r io.Reader) (*Report, error) {
	return run(ctx, r, nil)
}

// Run validates an import document and inserts every item that passes.
// Invalid items are reported and skipped; they never block valid ones.
func Run(ctx context.Context, r io.Reader, w ItemWriter) (*Report, error) {
	if w == nil {
		return nil, fmt.Errorf("nil item writer")
	}
	return run(ctx, r, w)
}

func run(ctx context.Context, r io.Reader, w ItemWriter) (*Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import document: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var docs []itemDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode import document: %w", err)
	}

	report := &Report{Results: make([]Result, 0, len(docs))}
	for _, doc := range docs {
		it, err := doc.toItem()
		if err == nil {
			err = bank.ValidateItem(it)
		}
		if err == nil && w != nil {
			err = w.Insert(ctx, it)
		}

		res := Result{ItemID: doc.ID, OK: err == nil}
		if err != nil {
			res.Reason = err.Error()
		} else if w != nil {
			report.Inserted++
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (d itemDoc) toItem() (bank.Item, error) {
	it := bank.Item{
		ID:             d.ID,
		SubjectID:      d.SubjectID,
		TopicID:        d.TopicID,
		CompetencyID:   d.CompetencyID,
		Type:           bank.ItemType(d.Type),
		Difficulty:     bank.Difficulty(d.Difficulty),
		CognitiveLevel: bank.CognitiveLevel(d.CognitiveLevel),
		Text:           d.Text,
		Choices:        d.Choices,
		Verified:       d.Verified,
	}
	answer, err := decodeAnswer(it.Type, d.Answer)
	if err != nil {
		return bank.Item{}, err
	}
	it.Answer = answer
	return it, nil
}

// decodeAnswer maps the flexible wire answer onto the tagged variant the
// item type expects.
func decodeAnswer(t bank.ItemType, raw json.RawMessage) (bank.Answer, error) {
	malformed := func(reason string) (bank.Answer, error) {
		return bank.Answer{}, &bank.AnswerError{Type: t, Reason: reason}
	}

	switch t {
	case bank.TypeSingleChoice:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return malformed("answer must be a string")
		}
		return bank.NewSingleChoiceAnswer(v), nil

	case bank.TypeMultiSelect:
		var vs []string
		if err := json.Unmarshal(raw, &vs); err != nil {
			return malformed("answer must be an array of strings")
		}
		return bank.NewMultiSelectAnswer(vs...), nil

	case bank.TypeTrueFalse:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return malformed("answer must be a boolean")
		}
		return bank.NewBooleanAnswer(b), nil

	case bank.TypeShortText, bank.TypeFillBlank, bank.TypeRationale:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return malformed("answer must be a string")
		}
		return bank.NewTextAnswer(v), nil

	case bank.TypeMatching, bank.TypeOrderedSequence:
		var vs []string
		if err := json.Unmarshal(raw, &vs); err != nil {
			return malformed("answer must be an array of strings")
		}
		return bank.NewOrderedListAnswer(vs...), nil
	}

	return malformed(fmt.Sprintf("unknown item type %q", t))
}
