package generator

import (
	"fmt"
	"strings"

	"github.com/abhisek/examiz/internal/bank"
)

// BlueprintError indicates a malformed blueprint: a caller error caught
// before any sampling happens.
type BlueprintError struct {
	Reason string
}

func (e *BlueprintError) Error() string {
	return fmt.Sprintf("invalid blueprint: %s", e.Reason)
}

// BucketShortfall reports one difficulty bucket whose candidate pool cannot
// cover its quota.
type BucketShortfall struct {
	Difficulty bank.Difficulty
	Requested  int
	Available  int
}

func (s BucketShortfall) String() string {
	return fmt.Sprintf("%s: requested %d, available %d", s.Difficulty, s.Requested, s.Available)
}

// SupplyError indicates the bank cannot satisfy the blueprint's quotas.
// Selection is strict all-or-nothing: no partial assessment is ever
// returned. The per-bucket shortfalls are surfaced verbatim so the caller
// can widen the scope or add items.
type SupplyError struct {
	Shortfalls []BucketShortfall
}

func (e *SupplyError) Error() string {
	parts := make([]string, len(e.Shortfalls))
	for i, s := range e.Shortfalls {
		parts[i] = s.String()
	}
	return "insufficient item supply: " + strings.Join(parts, "; ")
}

// InvariantError indicates the assembler received a selection whose size
// disagrees with the blueprint. Unreachable when selection succeeded; kept
// as a structural guard.
type InvariantError struct {
	Expected int
	Actual   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("assembly invariant violation: blueprint wants %d items, selection has %d", e.Expected, e.Actual)
}
