package bank

import "fmt"

// TaxonomyError indicates an item's cognitive level is not allowed for its
// item type.
type TaxonomyError struct {
	Type  ItemType
	Level CognitiveLevel
}

func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("incompatible taxonomy: level %q is not allowed for %q items", e.Level, e.Type)
}

// AnswerError indicates an item's correct-answer encoding violates the
// shape rules for its type.
type AnswerError struct {
	Type   ItemType
	Reason string
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("malformed answer for %q item: %s", e.Type, e.Reason)
}
