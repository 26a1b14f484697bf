package analytics

import (
	"context"
	"sort"
	"time"
)

// Pace is the behavior-derived learning-pace signal.
type Pace string

const (
	PaceFast     Pace = "fast"
	PaceModerate Pace = "moderate"
	PaceSlow     Pace = "slow"
)

// Multiplier returns the study-time scaling factor for the pace.
func (p Pace) Multiplier() float64 {
	switch p {
	case PaceFast:
		return 0.7
	case PaceSlow:
		return 1.3
	default:
		return 1.0
	}
}

// Cadence thresholds in submissions per week.
const (
	fastCadence = 2.0
	slowCadence = 0.5
)

// InferPace derives a pace from submission cadence: the average number of
// submissions per week between the first submission and now. Fewer than two
// submissions is not enough signal and reads as moderate.
func InferPace(subs []Submission, now time.Time) Pace {
	if len(subs) < 2 {
		return PaceModerate
	}

	times := make([]time.Time, len(subs))
	for i, s := range subs {
		times[i] = s.SubmittedAt
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	span := now.Sub(times[0])
	if span <= 0 {
		return PaceModerate
	}
	weeks := span.Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}
	perWeek := float64(len(subs)) / weeks

	switch {
	case perWeek >= fastCadence:
		return PaceFast
	case perWeek <= slowCadence:
		return PaceSlow
	default:
		return PaceModerate
	}
}

// PaceCache stores the last inferred pace per student. Writes are
// best-effort; the pace is always recomputed from the submission history,
// the cache only serves quick lookups outside a full diagnostic run.
type PaceCache interface {
	GetPace(ctx context.Context, userID string) (Pace, bool)
	SetPace(ctx context.Context, userID string, p Pace) error
}
