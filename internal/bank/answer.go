package bank

// AnswerKind tags the concrete shape of a correct-answer encoding.
type AnswerKind string

const (
	AnswerSingle      AnswerKind = "single"       // one choice value
	AnswerMulti       AnswerKind = "multi"        // two or more choice values
	AnswerBoolean     AnswerKind = "boolean"      // true/false
	AnswerText        AnswerKind = "text"         // free text
	AnswerOrderedList AnswerKind = "ordered_list" // ordered sequence of entries
)

// Answer is the tagged correct-answer encoding for an item. Exactly one of
// the shape fields is populated, according to Kind. Construct answers via
// the New* constructors so the shape invariants hold from the start.
type Answer struct {
	Kind     AnswerKind `json:"kind"`
	Value    string     `json:"value,omitempty"`
	Values   []string   `json:"values,omitempty"`
	Bool     bool       `json:"bool,omitempty"`
	Sequence []string   `json:"sequence,omitempty"`
}

// NewSingleChoiceAnswer encodes a single correct choice value.
func NewSingleChoiceAnswer(value string) Answer {
	return Answer{Kind: AnswerSingle, Value: value}
}

// NewMultiSelectAnswer encodes a set of correct choice values.
func NewMultiSelectAnswer(values ...string) Answer {
	return Answer{Kind: AnswerMulti, Values: values}
}

// NewBooleanAnswer encodes a true/false answer.
func NewBooleanAnswer(v bool) Answer {
	return Answer{Kind: AnswerBoolean, Bool: v}
}

// NewTextAnswer encodes a free-text answer.
func NewTextAnswer(text string) Answer {
	return Answer{Kind: AnswerText, Value: text}
}

// NewOrderedListAnswer encodes an ordered sequence of entries.
func NewOrderedListAnswer(entries ...string) Answer {
	return Answer{Kind: AnswerOrderedList, Sequence: entries}
}

// expectedKind returns the answer kind an item type requires.
func expectedKind(t ItemType) (AnswerKind, bool) {
	switch t {
	case TypeSingleChoice:
		return AnswerSingle, true
	case TypeMultiSelect:
		return AnswerMulti, true
	case TypeTrueFalse:
		return AnswerBoolean, true
	case TypeShortText, TypeFillBlank, TypeRationale:
		return AnswerText, true
	case TypeMatching, TypeOrderedSequence:
		return AnswerOrderedList, true
	}
	return "", false
}
