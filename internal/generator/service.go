package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/examiz/internal/bank"
)

// ItemSource supplies candidate items for a subject. *bank.Accessor
// satisfies this.
type ItemSource interface {
	FetchCandidates(ctx context.Context, subjectID string) ([]bank.Item, error)
}

// AssessmentWriter persists a finished assessment.
type AssessmentWriter interface {
	InsertAssessment(ctx context.Context, a *GeneratedAssessment) error
}

// Service runs the full generation pipeline: fetch candidates, stratified
// select, assemble, persist. Stateless apart from the selector's random
// source; safe to build per request.
type Service struct {
	items    ItemSource
	writer   AssessmentWriter
	selector *Selector
	log      *slog.Logger
}

// NewService wires a generation service. A nil logger discards output.
func NewService(items ItemSource, writer AssessmentWriter, selector *Selector, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{items: items, writer: writer, selector: selector, log: log}
}

// GenerateRequest carries a blueprint plus the assessment metadata.
type GenerateRequest struct {
	Blueprint Blueprint
	Title     string
	Type      AssessmentType
}

// Generate produces and persists an assessment, returning it with its
// assigned identity. Either a complete, quota-exact assessment comes back
// or a typed failure: *BlueprintError, *SupplyError, *InvariantError, or a
// store error. Nothing is persisted on failure and nothing is retried.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GeneratedAssessment, error) {
	if err := req.Blueprint.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.items.FetchCandidates(ctx, req.Blueprint.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	selected, err := s.selector.Select(req.Blueprint, candidates)
	if err != nil {
		return nil, err
	}

	assessment, err := Assemble(req.Blueprint, selected, req.Title, req.Type)
	if err != nil {
		return nil, err
	}
	assessment.ID = uuid.NewString()

	if err := s.writer.InsertAssessment(ctx, assessment); err != nil {
		return nil, fmt.Errorf("persist assessment: %w", err)
	}

	s.log.Info("assessment generated",
		"id", assessment.ID,
		"subject", assessment.SubjectID,
		"items", assessment.TotalItems,
		"candidates", len(candidates))
	return assessment, nil
}
