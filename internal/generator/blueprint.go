package generator

import (
	"fmt"
	"math"
)

// Blueprint describes the desired size, scope, and difficulty mix of a
// generated assessment. It is created per generation request and embedded
// in the resulting assessment for provenance; it is never persisted on its
// own.
type Blueprint struct {
	SubjectID    string   `json:"subject_id"`
	TargetTopics []string `json:"target_topics"`
	TotalItems   int      `json:"total_items"`

	// Difficulty mix as fractions in [0,1]. The fractions need not sum to
	// exactly 1: the difficult bucket absorbs all rounding remainder.
	EasyPct      float64 `json:"easy_pct"`
	ModeratePct  float64 `json:"moderate_pct"`
	DifficultPct float64 `json:"difficult_pct"`

	// VerifiedOnly restricts selection to items whose verification flag is
	// set by the authoring workflow.
	VerifiedOnly bool `json:"verified_only,omitempty"`
}

// Validate checks the blueprint for caller errors before any sampling
// happens. Returns *BlueprintError on failure.
func (b Blueprint) Validate() error {
	if b.SubjectID == "" {
		return &BlueprintError{Reason: "subject_id is empty"}
	}
	if b.TotalItems < 0 {
		return &BlueprintError{Reason: fmt.Sprintf("total_items is negative (%d)", b.TotalItems)}
	}
	for _, p := range []struct {
		name string
		val  float64
	}{
		{"easy_pct", b.EasyPct},
		{"moderate_pct", b.ModeratePct},
		{"difficult_pct", b.DifficultPct},
	} {
		if p.val < 0 || p.val > 1 {
			return &BlueprintError{Reason: fmt.Sprintf("%s must be between 0 and 1, got %g", p.name, p.val)}
		}
	}
	if b.EasyPct+b.ModeratePct > 1 {
		return &BlueprintError{
			Reason: fmt.Sprintf("easy_pct + moderate_pct exceeds 1 (%g)", b.EasyPct+b.ModeratePct),
		}
	}
	return nil
}

// Quotas holds the per-bucket item counts derived from a blueprint.
// Easy + Moderate + Difficult always equals the blueprint's TotalItems.
type Quotas struct {
	Easy      int
	Moderate  int
	Difficult int
}

// Quotas computes the integer per-bucket quotas. Easy and moderate are
// floored; the difficult bucket absorbs the full rounding remainder, so
// the same blueprint always yields the same composition.
func (b Blueprint) Quotas() Quotas {
	easy := int(math.Floor(float64(b.TotalItems) * b.EasyPct))
	moderate := int(math.Floor(float64(b.TotalItems) * b.ModeratePct))
	return Quotas{
		Easy:      easy,
		Moderate:  moderate,
		Difficult: b.TotalItems - easy - moderate,
	}
}

// ScopeSet returns the target topics as a membership set for in-memory
// narrowing. Nil when the blueprint has no topic scope.
func (b Blueprint) ScopeSet() map[string]struct{} {
	if len(b.TargetTopics) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(b.TargetTopics))
	for _, t := range b.TargetTopics {
		set[t] = struct{}{}
	}
	return set
}
