package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/examiz/internal/bank"
)

type fakeItemSource struct {
	items []bank.Item
	err   error
}

func (f *fakeItemSource) FetchCandidates(_ context.Context, subjectID string) ([]bank.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []bank.Item
	for _, it := range f.items {
		if it.SubjectID == subjectID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeWriter struct {
	inserted []*GeneratedAssessment
	err      error
}

func (f *fakeWriter) InsertAssessment(_ context.Context, a *GeneratedAssessment) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, a)
	return nil
}

func TestServiceGenerate_EndToEnd(t *testing.T) {
	src := &fakeItemSource{items: makePool(3, 4, 3)}
	w := &fakeWriter{}
	svc := NewService(src, w, NewSeededSelector(42), nil)

	a, err := svc.Generate(context.Background(), GenerateRequest{
		Blueprint: standardBlueprint(),
		Title:     "Chapter 1 quiz",
		Type:      TypeQuiz,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if a.ID == "" {
		t.Error("assessment has no assigned identity")
	}
	if a.TotalItems != 10 || len(a.Items) != 10 {
		t.Errorf("assessment size = %d/%d, want 10/10", a.TotalItems, len(a.Items))
	}
	counts := countByDifficulty(a.Items)
	if counts[bank.DifficultyEasy] != 3 || counts[bank.DifficultyModerate] != 4 || counts[bank.DifficultyDifficult] != 3 {
		t.Errorf("composition = %v, want 3/4/3", counts)
	}
	if len(w.inserted) != 1 {
		t.Fatalf("persisted %d assessments, want 1", len(w.inserted))
	}
}

func TestServiceGenerate_SupplyFailureNotPersisted(t *testing.T) {
	src := &fakeItemSource{items: makePool(1, 1, 1)}
	w := &fakeWriter{}
	svc := NewService(src, w, NewSeededSelector(1), nil)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Blueprint: standardBlueprint(),
		Title:     "Doomed",
		Type:      TypeQuiz,
	})
	var supplyErr *SupplyError
	if !errors.As(err, &supplyErr) {
		t.Fatalf("Generate() = %v, want SupplyError", err)
	}
	if len(w.inserted) != 0 {
		t.Errorf("persisted %d assessments on failure, want 0", len(w.inserted))
	}
}

func TestServiceGenerate_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("store unreachable")
	src := &fakeItemSource{err: storeErr}
	svc := NewService(src, &fakeWriter{}, NewSeededSelector(1), nil)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Blueprint: standardBlueprint(),
		Title:     "Unlucky",
		Type:      TypeQuiz,
	})
	if !errors.Is(err, storeErr) {
		t.Errorf("Generate() = %v, want wrapped store error", err)
	}
}

func TestServiceGenerate_InvalidBlueprintBeforeFetch(t *testing.T) {
	src := &fakeItemSource{err: errors.New("should not be called")}
	svc := NewService(src, &fakeWriter{}, NewSeededSelector(1), nil)

	bp := standardBlueprint()
	bp.TotalItems = -5
	_, err := svc.Generate(context.Background(), GenerateRequest{Blueprint: bp})
	var bpErr *BlueprintError
	if !errors.As(err, &bpErr) {
		t.Errorf("Generate() = %v, want BlueprintError before any store access", err)
	}
}
