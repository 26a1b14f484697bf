package analytics

import (
	"testing"
	"time"
)

func submissionsAt(times ...time.Time) []Submission {
	subs := make([]Submission, len(times))
	for i, ts := range times {
		subs[i] = Submission{SubmittedAt: ts}
	}
	return subs
}

func TestInferPace(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	weekAgo := func(w float64) time.Time {
		return now.Add(-time.Duration(w * 7 * 24 * float64(time.Hour)))
	}

	tests := []struct {
		name string
		subs []Submission
		want Pace
	}{
		{"no history", nil, PaceModerate},
		{"single submission", submissionsAt(weekAgo(1)), PaceModerate},
		{
			"fast: six submissions in two weeks",
			submissionsAt(weekAgo(2), weekAgo(1.7), weekAgo(1.3), weekAgo(1), weekAgo(0.5), weekAgo(0.1)),
			PaceFast,
		},
		{
			"slow: two submissions over eight weeks",
			submissionsAt(weekAgo(8), weekAgo(5)),
			PaceSlow,
		},
		{
			"moderate: four submissions over four weeks",
			submissionsAt(weekAgo(4), weekAgo(3), weekAgo(2), weekAgo(1)),
			PaceModerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferPace(tt.subs, now); got != tt.want {
				t.Errorf("InferPace() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPaceMultiplier(t *testing.T) {
	tests := []struct {
		pace Pace
		want float64
	}{
		{PaceFast, 0.7},
		{PaceSlow, 1.3},
		{PaceModerate, 1.0},
		{Pace(""), 1.0},
	}
	for _, tt := range tests {
		if got := tt.pace.Multiplier(); !almostEqual(got, tt.want) {
			t.Errorf("Multiplier(%q) = %g, want %g", tt.pace, got, tt.want)
		}
	}
}
