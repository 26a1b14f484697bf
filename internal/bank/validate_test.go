package bank

import (
	"errors"
	"testing"
)

func validSingleChoice() Item {
	return Item{
		ID:             "q1",
		SubjectID:      "S1",
		TopicID:        "T1",
		CompetencyID:   "C1",
		Type:           TypeSingleChoice,
		Difficulty:     DifficultyEasy,
		CognitiveLevel: LevelRemembering,
		Text:           "What is 2+2?",
		Choices:        []string{"3", "4", "5"},
		Answer:         NewSingleChoiceAnswer("4"),
	}
}

func TestValidateItem_Valid(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{"single choice", validSingleChoice()},
		{
			"multi select",
			Item{
				Type:           TypeMultiSelect,
				Difficulty:     DifficultyDifficult,
				CognitiveLevel: LevelEvaluating,
				Choices:        []string{"a", "b", "c", "d"},
				Answer:         NewMultiSelectAnswer("a", "c"),
			},
		},
		{
			"true false",
			Item{
				Type:           TypeTrueFalse,
				Difficulty:     DifficultyEasy,
				CognitiveLevel: LevelUnderstanding,
				Answer:         NewBooleanAnswer(true),
			},
		},
		{
			"fill blank",
			Item{
				Type:           TypeFillBlank,
				Difficulty:     DifficultyModerate,
				CognitiveLevel: LevelRemembering,
				Answer:         NewTextAnswer("mitochondria"),
			},
		},
		{
			"ordered sequence",
			Item{
				Type:           TypeOrderedSequence,
				Difficulty:     DifficultyModerate,
				CognitiveLevel: LevelApplying,
				Answer:         NewOrderedListAnswer("first", "second", "third"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateItem(tt.item); err != nil {
				t.Errorf("ValidateItem() = %v, want nil", err)
			}
		})
	}
}

func TestValidateItem_IncompatibleTaxonomy(t *testing.T) {
	tests := []struct {
		name  string
		typ   ItemType
		level CognitiveLevel
	}{
		{"single choice with creating", TypeSingleChoice, LevelCreating},
		{"multi select with remembering", TypeMultiSelect, LevelRemembering},
		{"true false with applying", TypeTrueFalse, LevelApplying},
		{"matching with evaluating", TypeMatching, LevelEvaluating},
		{"unknown level", TypeSingleChoice, CognitiveLevel("memorizing")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validSingleChoice()
			it.Type = tt.typ
			it.CognitiveLevel = tt.level
			err := ValidateItem(it)
			var taxErr *TaxonomyError
			if !errors.As(err, &taxErr) {
				t.Fatalf("ValidateItem() = %v, want TaxonomyError", err)
			}
			if taxErr.Type != tt.typ || taxErr.Level != tt.level {
				t.Errorf("TaxonomyError = %+v, want type %q level %q", taxErr, tt.typ, tt.level)
			}
		})
	}
}

func TestValidateItem_MalformedAnswer(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Item)
	}{
		{
			"answer not in choice set",
			func(it *Item) { it.Answer = NewSingleChoiceAnswer("7") },
		},
		{
			"single choice with fewer than 2 choices",
			func(it *Item) { it.Choices = []string{"4"} },
		},
		{
			"wrong answer kind for type",
			func(it *Item) { it.Answer = NewBooleanAnswer(true) },
		},
		{
			"multi select with one value",
			func(it *Item) {
				it.Type = TypeMultiSelect
				it.CognitiveLevel = LevelAnalyzing
				it.Answer = NewMultiSelectAnswer("4")
			},
		},
		{
			"multi select value outside choices",
			func(it *Item) {
				it.Type = TypeMultiSelect
				it.CognitiveLevel = LevelAnalyzing
				it.Answer = NewMultiSelectAnswer("4", "9")
			},
		},
		{
			"empty text answer",
			func(it *Item) {
				it.Type = TypeShortText
				it.CognitiveLevel = LevelApplying
				it.Answer = NewTextAnswer("")
			},
		},
		{
			"ordered answer with one entry",
			func(it *Item) {
				it.Type = TypeMatching
				it.CognitiveLevel = LevelApplying
				it.Answer = NewOrderedListAnswer("only")
			},
		},
		{
			"unknown item type",
			func(it *Item) { it.Type = ItemType("essay") },
		},
		{
			"unknown difficulty",
			func(it *Item) { it.Difficulty = Difficulty("impossible") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validSingleChoice()
			tt.mutate(&it)
			err := ValidateItem(it)
			var ansErr *AnswerError
			if !errors.As(err, &ansErr) {
				t.Fatalf("ValidateItem() = %v, want AnswerError", err)
			}
		})
	}
}

func TestLevelRank_Ordering(t *testing.T) {
	levels := AllLevels()
	for i, l := range levels {
		if got := l.Rank(); got != i {
			t.Errorf("Rank(%q) = %d, want %d", l, got, i)
		}
	}
	if got := CognitiveLevel("bogus").Rank(); got != -1 {
		t.Errorf("Rank(bogus) = %d, want -1", got)
	}
}

func TestItemInScope(t *testing.T) {
	it := validSingleChoice()
	scope := map[string]struct{}{"T1": {}}
	if !it.InScope(scope) {
		t.Error("item with matching topic should be in scope")
	}
	if !it.InScope(map[string]struct{}{"C1": {}}) {
		t.Error("item with matching competency should be in scope")
	}
	if it.InScope(map[string]struct{}{"T9": {}}) {
		t.Error("item with no matching key should be out of scope")
	}
	if !it.InScope(nil) {
		t.Error("empty scope should match everything")
	}
}
