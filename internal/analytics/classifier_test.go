package analytics

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		tally      Tally
		wantPct    float64
		wantStatus Status
		wantRisk   Risk
	}{
		{"exactly 85", Tally{Correct: 85, Total: 100}, 85.0, StatusMastery, RiskLow},
		{"just under 85", Tally{Correct: 8499, Total: 10000}, 84.99, StatusProficient, RiskLow},
		{"exactly 70", Tally{Correct: 70, Total: 100}, 70.0, StatusProficient, RiskLow},
		{"just under 70", Tally{Correct: 6999, Total: 10000}, 69.99, StatusDeveloping, RiskMedium},
		{"exactly 50", Tally{Correct: 50, Total: 100}, 50.0, StatusDeveloping, RiskMedium},
		{"just under 50", Tally{Correct: 4999, Total: 10000}, 49.99, StatusCritical, RiskHigh},
		{"perfect", Tally{Correct: 10, Total: 10}, 100.0, StatusMastery, RiskLow},
		{"all wrong", Tally{Correct: 0, Total: 10}, 0.0, StatusCritical, RiskHigh},
		{"half and half", Tally{Correct: 5, Total: 10}, 50.0, StatusDeveloping, RiskMedium},
		{"empty tally", Tally{}, 0.0, StatusCritical, RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.tally)
			if !almostEqual(c.MasteryPercentage, tt.wantPct) {
				t.Errorf("MasteryPercentage = %f, want %f", c.MasteryPercentage, tt.wantPct)
			}
			if c.Status != tt.wantStatus || c.Risk != tt.wantRisk {
				t.Errorf("band = %s/%s, want %s/%s", c.Status, c.Risk, tt.wantStatus, tt.wantRisk)
			}
		})
	}
}

// statusRank orders statuses from worst to best for the monotonicity check.
func statusRank(s Status) int {
	switch s {
	case StatusCritical:
		return 0
	case StatusDeveloping:
		return 1
	case StatusProficient:
		return 2
	default:
		return 3
	}
}

func TestClassify_Monotonic(t *testing.T) {
	const total = 40
	prev := Classify(Tally{Correct: 0, Total: total})
	for correct := 1; correct <= total; correct++ {
		cur := Classify(Tally{Correct: correct, Total: total})
		if cur.MasteryPercentage < prev.MasteryPercentage {
			t.Fatalf("mastery decreased: %d/%d -> %f after %f", correct, total, cur.MasteryPercentage, prev.MasteryPercentage)
		}
		if statusRank(cur.Status) < statusRank(prev.Status) {
			t.Fatalf("status worsened at %d/%d: %s after %s", correct, total, cur.Status, prev.Status)
		}
		prev = cur
	}
}

func TestPassProbability(t *testing.T) {
	tests := []struct {
		name      string
		avg       float64
		count     int
		threshold int
		want      float64
	}{
		{"no bonus below threshold", 80, 3, subjectBonusThreshold, 0.80},
		{"bonus above subject threshold", 80, 4, subjectBonusThreshold, 0.85},
		{"bonus above comprehensive threshold", 60, 6, comprehensiveBonusThreshold, 0.65},
		{"no bonus at comprehensive threshold", 60, 5, comprehensiveBonusThreshold, 0.60},
		{"capped at one", 98, 10, subjectBonusThreshold, 1.0},
		{"zero history score", 0, 1, subjectBonusThreshold, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PassProbability(tt.avg, tt.count, tt.threshold)
			if !almostEqual(got, tt.want) {
				t.Errorf("PassProbability(%g, %d) = %f, want %f", tt.avg, tt.count, got, tt.want)
			}
		})
	}
}
