package generator

import (
	"math/rand"
	"time"

	"github.com/abhisek/examiz/internal/bank"
)

// Selector draws a difficulty-stratified random subset of candidate items.
// Each selector owns its random source; selections are request-local, so
// two concurrent generations may legitimately pick overlapping items (the
// bank is a catalog, not an inventory).
type Selector struct {
	rand *rand.Rand
}

// NewSelector creates a selector seeded from the wall clock.
func NewSelector() *Selector {
	return NewSeededSelector(time.Now().UnixNano())
}

// NewSeededSelector creates a selector with a fixed seed, for reproducible
// selection in tests.
func NewSeededSelector(seed int64) *Selector {
	return &Selector{rand: rand.New(rand.NewSource(seed))}
}

// Select narrows candidates to the blueprint's topic scope, partitions them
// into difficulty pools, and draws each bucket's quota uniformly at random
// without replacement. Buckets are sampled independently; there is no
// cross-bucket substitution. The result concatenates the easy, moderate,
// and difficult draws in that order.
//
// Returns *BlueprintError for malformed blueprints and *SupplyError when
// any pool is smaller than its quota.
func (s *Selector) Select(bp Blueprint, candidates []bank.Item) ([]bank.Item, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}

	quotas := bp.Quotas()
	pools := partition(bp, candidates)

	var shortfalls []BucketShortfall
	for _, check := range []struct {
		difficulty bank.Difficulty
		quota      int
	}{
		{bank.DifficultyEasy, quotas.Easy},
		{bank.DifficultyModerate, quotas.Moderate},
		{bank.DifficultyDifficult, quotas.Difficult},
	} {
		if available := len(pools[check.difficulty]); available < check.quota {
			shortfalls = append(shortfalls, BucketShortfall{
				Difficulty: check.difficulty,
				Requested:  check.quota,
				Available:  available,
			})
		}
	}
	if len(shortfalls) > 0 {
		return nil, &SupplyError{Shortfalls: shortfalls}
	}

	selected := make([]bank.Item, 0, bp.TotalItems)
	selected = append(selected, s.draw(pools[bank.DifficultyEasy], quotas.Easy)...)
	selected = append(selected, s.draw(pools[bank.DifficultyModerate], quotas.Moderate)...)
	selected = append(selected, s.draw(pools[bank.DifficultyDifficult], quotas.Difficult)...)
	return selected, nil
}

// partition filters candidates to the blueprint scope and splits them into
// disjoint difficulty pools.
func partition(bp Blueprint, candidates []bank.Item) map[bank.Difficulty][]bank.Item {
	scope := bp.ScopeSet()
	pools := make(map[bank.Difficulty][]bank.Item, 3)
	for _, it := range candidates {
		if !it.InScope(scope) {
			continue
		}
		if bp.VerifiedOnly && !it.Verified {
			continue
		}
		if !it.Difficulty.Valid() {
			continue
		}
		pools[it.Difficulty] = append(pools[it.Difficulty], it)
	}
	return pools
}

// draw picks n items uniformly at random without replacement via a partial
// Fisher-Yates shuffle over a copy of the pool.
func (s *Selector) draw(pool []bank.Item, n int) []bank.Item {
	if n == 0 {
		return nil
	}
	shuffled := make([]bank.Item, len(pool))
	copy(shuffled, pool)
	for i := 0; i < n; i++ {
		j := i + s.rand.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n]
}
