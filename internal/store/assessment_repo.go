package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/assessment"
	"github.com/abhisek/examiz/internal/bank"
	"github.com/abhisek/examiz/internal/generator"
)

// AssessmentRepo persists and resolves generated assessments.
type AssessmentRepo struct {
	client *ent.Client
}

// InsertAssessment stores a finished assessment. Satisfies
// generator.AssessmentWriter.
func (r *AssessmentRepo) InsertAssessment(ctx context.Context, a *generator.GeneratedAssessment) error {
	blueprint, err := json.Marshal(a.Blueprint)
	if err != nil {
		return fmt.Errorf("encode blueprint: %w", err)
	}
	items, err := json.Marshal(a.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	_, err = r.client.Assessment.Create().
		SetAssessmentID(a.ID).
		SetTitle(a.Title).
		SetAssessmentType(string(a.Type)).
		SetSubjectID(a.SubjectID).
		SetBlueprint(blueprint).
		SetItems(items).
		SetTotalItems(a.TotalItems).
		Save(ctx)
	if err != nil {
		return unavailable("insert assessment", err)
	}
	return nil
}

// Assessment returns the stored assessment with the given id, or nil when
// absent. Satisfies analytics.AssessmentSource.
func (r *AssessmentRepo) Assessment(ctx context.Context, id string) (*generator.GeneratedAssessment, error) {
	row, err := r.client.Assessment.Query().
		Where(assessment.AssessmentID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, unavailable("get assessment", err)
	}
	return toAssessment(row)
}

// BySubject returns all stored assessments for a subject, newest first.
func (r *AssessmentRepo) BySubject(ctx context.Context, subjectID string) ([]generator.GeneratedAssessment, error) {
	rows, err := r.client.Assessment.Query().
		Where(assessment.SubjectID(subjectID)).
		Order(ent.Desc(assessment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, unavailable("query assessments", err)
	}

	out := make([]generator.GeneratedAssessment, 0, len(rows))
	for _, row := range rows {
		a, err := toAssessment(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

// Count returns the number of stored assessments.
func (r *AssessmentRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Assessment.Query().Count(ctx)
	if err != nil {
		return 0, unavailable("count assessments", err)
	}
	return n, nil
}

func toAssessment(row *ent.Assessment) (*generator.GeneratedAssessment, error) {
	var bp generator.Blueprint
	if err := json.Unmarshal(row.Blueprint, &bp); err != nil {
		return nil, fmt.Errorf("decode blueprint for %s: %w", row.AssessmentID, err)
	}
	var items []bank.Item
	if err := json.Unmarshal(row.Items, &items); err != nil {
		return nil, fmt.Errorf("decode items for %s: %w", row.AssessmentID, err)
	}
	return &generator.GeneratedAssessment{
		ID:         row.AssessmentID,
		Title:      row.Title,
		Type:       generator.AssessmentType(row.AssessmentType),
		SubjectID:  row.SubjectID,
		Blueprint:  bp,
		Items:      items,
		TotalItems: row.TotalItems,
		CreatedAt:  row.CreatedAt,
	}, nil
}
