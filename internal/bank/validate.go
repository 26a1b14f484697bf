package bank

import "fmt"

// allowedLevels maps each item type to the cognitive levels it may carry.
var allowedLevels = map[ItemType][]CognitiveLevel{
	TypeSingleChoice:    {LevelRemembering, LevelUnderstanding, LevelApplying},
	TypeMultiSelect:     {LevelAnalyzing, LevelEvaluating, LevelCreating},
	TypeTrueFalse:       {LevelRemembering, LevelUnderstanding},
	TypeShortText:       {LevelUnderstanding, LevelApplying, LevelAnalyzing},
	TypeFillBlank:       {LevelRemembering, LevelUnderstanding},
	TypeRationale:       {LevelAnalyzing, LevelEvaluating, LevelCreating},
	TypeMatching:        {LevelApplying, LevelAnalyzing},
	TypeOrderedSequence: {LevelApplying, LevelAnalyzing},
}

// LevelAllowed reports whether the cognitive level may be used with the
// item type.
func LevelAllowed(t ItemType, l CognitiveLevel) bool {
	for _, allowed := range allowedLevels[t] {
		if allowed == l {
			return true
		}
	}
	return false
}

// ValidateItem checks an item's taxonomy and answer shape. Returns nil on
// success, *TaxonomyError if the cognitive level is not allowed for the
// type, or *AnswerError for shape violations. This runs at item creation
// and again whenever taxonomy, difficulty, or answer fields are edited.
func ValidateItem(it Item) error {
	if _, known := expectedKind(it.Type); !known {
		return &AnswerError{Type: it.Type, Reason: "unknown item type"}
	}
	if !it.Difficulty.Valid() {
		return &AnswerError{Type: it.Type, Reason: fmt.Sprintf("unknown difficulty %q", it.Difficulty)}
	}
	if !LevelAllowed(it.Type, it.CognitiveLevel) {
		return &TaxonomyError{Type: it.Type, Level: it.CognitiveLevel}
	}
	return validateAnswer(it)
}

func validateAnswer(it Item) error {
	want, _ := expectedKind(it.Type)
	if it.Answer.Kind != want {
		return &AnswerError{
			Type:   it.Type,
			Reason: fmt.Sprintf("answer kind %q, want %q", it.Answer.Kind, want),
		}
	}

	switch it.Type {
	case TypeSingleChoice:
		if len(it.Choices) < 2 {
			return &AnswerError{Type: it.Type, Reason: "fewer than 2 choices"}
		}
		if it.Answer.Value == "" {
			return &AnswerError{Type: it.Type, Reason: "empty answer value"}
		}
		if !memberOf(it.Answer.Value, it.Choices) {
			return &AnswerError{Type: it.Type, Reason: fmt.Sprintf("answer %q is not in the choice set", it.Answer.Value)}
		}

	case TypeMultiSelect:
		if len(it.Choices) < 2 {
			return &AnswerError{Type: it.Type, Reason: "fewer than 2 choices"}
		}
		if len(it.Answer.Values) < 2 {
			return &AnswerError{Type: it.Type, Reason: "multi-select requires at least 2 correct values"}
		}
		for _, v := range it.Answer.Values {
			if !memberOf(v, it.Choices) {
				return &AnswerError{Type: it.Type, Reason: fmt.Sprintf("answer %q is not in the choice set", v)}
			}
		}

	case TypeTrueFalse:
		// Kind check above is sufficient; any boolean is legal.

	case TypeShortText, TypeFillBlank, TypeRationale:
		if it.Answer.Value == "" {
			return &AnswerError{Type: it.Type, Reason: "empty answer text"}
		}

	case TypeMatching, TypeOrderedSequence:
		if len(it.Answer.Sequence) < 2 {
			return &AnswerError{Type: it.Type, Reason: "ordered answer requires at least 2 entries"}
		}
		for _, entry := range it.Answer.Sequence {
			if entry == "" {
				return &AnswerError{Type: it.Type, Reason: "ordered answer contains an empty entry"}
			}
		}
	}

	return nil
}

func memberOf(v string, set []string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
