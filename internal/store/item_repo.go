package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/item"
	"github.com/abhisek/examiz/internal/bank"
)

// ItemRepo provides access to the curated item bank.
type ItemRepo struct {
	client *ent.Client
}

// ItemsBySubject returns every item belonging to the subject. Satisfies
// bank.Source; topic narrowing happens in memory at the selector.
func (r *ItemRepo) ItemsBySubject(ctx context.Context, subjectID string) ([]bank.Item, error) {
	rows, err := r.client.Item.Query().
		Where(item.SubjectID(subjectID)).
		All(ctx)
	if err != nil {
		return nil, unavailable("query items", err)
	}

	items := make([]bank.Item, 0, len(rows))
	for _, row := range rows {
		it, err := toBankItem(row)
		if err != nil {
			return nil, fmt.Errorf("decode item %s: %w", row.ItemID, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// Get returns the item with the given id, or nil when absent.
func (r *ItemRepo) Get(ctx context.Context, id string) (*bank.Item, error) {
	row, err := r.client.Item.Query().
		Where(item.ItemID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, unavailable("get item", err)
	}
	it, err := toBankItem(row)
	if err != nil {
		return nil, fmt.Errorf("decode item %s: %w", id, err)
	}
	return &it, nil
}

// Insert stores a new item. The validity rules run here so a malformed
// item never reaches the bank.
func (r *ItemRepo) Insert(ctx context.Context, it bank.Item) error {
	if err := bank.ValidateItem(it); err != nil {
		return err
	}

	answer, err := json.Marshal(it.Answer)
	if err != nil {
		return fmt.Errorf("encode answer: %w", err)
	}

	builder := r.client.Item.Create().
		SetItemID(it.ID).
		SetSubjectID(it.SubjectID).
		SetCompetencyID(it.CompetencyID).
		SetItemType(string(it.Type)).
		SetDifficulty(string(it.Difficulty)).
		SetCognitiveLevel(string(it.CognitiveLevel)).
		SetText(it.Text).
		SetAnswer(answer).
		SetVerified(it.Verified)

	if it.TopicID != "" {
		builder = builder.SetTopicID(it.TopicID)
	}
	if len(it.Choices) > 0 {
		builder = builder.SetChoices(it.Choices)
	}

	if _, err := builder.Save(ctx); err != nil {
		return unavailable("insert item", err)
	}
	return nil
}

// SetVerified flips the only mutable item field: the verification flag
// maintained by the authoring workflow.
func (r *ItemRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	n, err := r.client.Item.Update().
		Where(item.ItemID(id)).
		SetVerified(verified).
		Save(ctx)
	if err != nil {
		return unavailable("update item verification", err)
	}
	if n == 0 {
		return fmt.Errorf("item %s not found", id)
	}
	return nil
}

// Count returns the number of stored items.
func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Item.Query().Count(ctx)
	if err != nil {
		return 0, unavailable("count items", err)
	}
	return n, nil
}

func toBankItem(row *ent.Item) (bank.Item, error) {
	var answer bank.Answer
	if err := json.Unmarshal(row.Answer, &answer); err != nil {
		return bank.Item{}, fmt.Errorf("decode answer: %w", err)
	}
	return bank.Item{
		ID:             row.ItemID,
		SubjectID:      row.SubjectID,
		TopicID:        row.TopicID,
		CompetencyID:   row.CompetencyID,
		Type:           bank.ItemType(row.ItemType),
		Difficulty:     bank.Difficulty(row.Difficulty),
		CognitiveLevel: bank.CognitiveLevel(row.CognitiveLevel),
		Text:           row.Text,
		Choices:        row.Choices,
		Answer:         answer,
		Verified:       row.Verified,
	}, nil
}
