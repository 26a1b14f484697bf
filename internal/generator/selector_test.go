package generator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/examiz/internal/bank"
)

// makePool builds a candidate pool with the given counts per difficulty,
// all in subject S1 / topic T1.
func makePool(easy, moderate, difficult int) []bank.Item {
	var pool []bank.Item
	add := func(d bank.Difficulty, n int) {
		for i := 0; i < n; i++ {
			pool = append(pool, bank.Item{
				ID:             fmt.Sprintf("%s-%d", d, i),
				SubjectID:      "S1",
				TopicID:        "T1",
				CompetencyID:   "C1",
				Type:           bank.TypeSingleChoice,
				Difficulty:     d,
				CognitiveLevel: bank.LevelRemembering,
				Choices:        []string{"a", "b"},
				Answer:         bank.NewSingleChoiceAnswer("a"),
			})
		}
	}
	add(bank.DifficultyEasy, easy)
	add(bank.DifficultyModerate, moderate)
	add(bank.DifficultyDifficult, difficult)
	return pool
}

func standardBlueprint() Blueprint {
	return Blueprint{
		SubjectID:    "S1",
		TargetTopics: []string{"T1"},
		TotalItems:   10,
		EasyPct:      0.3,
		ModeratePct:  0.4,
		DifficultPct: 0.3,
	}
}

func countByDifficulty(items []bank.Item) map[bank.Difficulty]int {
	counts := make(map[bank.Difficulty]int)
	for _, it := range items {
		counts[it.Difficulty]++
	}
	return counts
}

func TestSelect_ExactComposition(t *testing.T) {
	sel := NewSeededSelector(42)
	pool := makePool(3, 4, 3)

	selected, err := sel.Select(standardBlueprint(), pool)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(selected) != 10 {
		t.Fatalf("Select() returned %d items, want 10", len(selected))
	}
	counts := countByDifficulty(selected)
	if counts[bank.DifficultyEasy] != 3 || counts[bank.DifficultyModerate] != 4 || counts[bank.DifficultyDifficult] != 3 {
		t.Errorf("composition = %v, want 3/4/3", counts)
	}
}

func TestSelect_WithoutReplacement(t *testing.T) {
	sel := NewSeededSelector(7)
	pool := makePool(20, 20, 20)

	for trial := 0; trial < 25; trial++ {
		selected, err := sel.Select(standardBlueprint(), pool)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		seen := make(map[string]bool, len(selected))
		for _, it := range selected {
			if seen[it.ID] {
				t.Fatalf("trial %d: item %s selected twice", trial, it.ID)
			}
			seen[it.ID] = true
		}
	}
}

func TestSelect_InsufficientSupply(t *testing.T) {
	sel := NewSeededSelector(1)
	// Moderate bucket is one short, difficult two short.
	pool := makePool(3, 3, 1)

	_, err := sel.Select(standardBlueprint(), pool)
	var supplyErr *SupplyError
	if !errors.As(err, &supplyErr) {
		t.Fatalf("Select() = %v, want SupplyError", err)
	}
	if len(supplyErr.Shortfalls) != 2 {
		t.Fatalf("Shortfalls = %v, want 2 entries", supplyErr.Shortfalls)
	}
	mod := supplyErr.Shortfalls[0]
	if mod.Difficulty != bank.DifficultyModerate || mod.Requested != 4 || mod.Available != 3 {
		t.Errorf("moderate shortfall = %+v, want requested 4 available 3", mod)
	}
	diff := supplyErr.Shortfalls[1]
	if diff.Difficulty != bank.DifficultyDifficult || diff.Requested != 3 || diff.Available != 1 {
		t.Errorf("difficult shortfall = %+v, want requested 3 available 1", diff)
	}
}

func TestSelect_TopicScopeNarrowing(t *testing.T) {
	sel := NewSeededSelector(3)
	pool := makePool(3, 4, 3)
	// Out-of-scope items must not count toward supply.
	outOfScope := makePool(10, 10, 10)
	for i := range outOfScope {
		outOfScope[i].ID = "other-" + outOfScope[i].ID
		outOfScope[i].TopicID = "T2"
		outOfScope[i].CompetencyID = "C2"
	}

	selected, err := sel.Select(standardBlueprint(), append(pool, outOfScope...))
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for _, it := range selected {
		if it.TopicID != "T1" {
			t.Errorf("selected out-of-scope item %s (topic %s)", it.ID, it.TopicID)
		}
	}
}

func TestSelect_CompetencyScopeMatches(t *testing.T) {
	sel := NewSeededSelector(5)
	pool := makePool(3, 4, 3)
	for i := range pool {
		pool[i].TopicID = "T9" // only the competency id is in scope
	}
	bp := standardBlueprint()
	bp.TargetTopics = []string{"C1"}

	selected, err := sel.Select(bp, pool)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(selected) != 10 {
		t.Errorf("Select() returned %d items, want 10", len(selected))
	}
}

func TestSelect_ZeroTotalItems(t *testing.T) {
	sel := NewSeededSelector(9)
	bp := standardBlueprint()
	bp.TotalItems = 0

	selected, err := sel.Select(bp, nil)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(selected) != 0 {
		t.Errorf("Select() returned %d items, want 0", len(selected))
	}
}

func TestSelect_InvalidBlueprint(t *testing.T) {
	sel := NewSeededSelector(2)
	bp := standardBlueprint()
	bp.EasyPct = 1.2

	_, err := sel.Select(bp, makePool(5, 5, 5))
	var bpErr *BlueprintError
	if !errors.As(err, &bpErr) {
		t.Errorf("Select() = %v, want BlueprintError", err)
	}
}

func TestSelect_VerifiedOnly(t *testing.T) {
	sel := NewSeededSelector(11)
	pool := makePool(6, 8, 6)
	for i := range pool {
		pool[i].Verified = i%2 == 0
	}
	bp := standardBlueprint()
	bp.VerifiedOnly = true

	selected, err := sel.Select(bp, pool)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for _, it := range selected {
		if !it.Verified {
			t.Errorf("selected unverified item %s", it.ID)
		}
	}
}

func TestSelect_BucketsIndependent(t *testing.T) {
	sel := NewSeededSelector(13)
	// Plenty of easy items cannot compensate for a missing difficult pool.
	pool := makePool(100, 4, 2)

	_, err := sel.Select(standardBlueprint(), pool)
	var supplyErr *SupplyError
	if !errors.As(err, &supplyErr) {
		t.Fatalf("Select() = %v, want SupplyError", err)
	}
}
