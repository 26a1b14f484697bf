package analytics

// Status is the mastery band a competency falls in.
type Status string

const (
	StatusMastery    Status = "Mastery"
	StatusProficient Status = "Proficient"
	StatusDeveloping Status = "Developing"
	StatusCritical   Status = "Critical"
)

// Risk is the remediation urgency attached to a status band.
type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

// Classification is the derived mastery result for one competency.
type Classification struct {
	MasteryPercentage float64
	Status            Status
	Risk              Risk
}

// Classify converts a raw tally into a mastery percentage and its
// status/risk band. The thresholds are fixed and not configurable; callers
// downstream depend on these exact bands:
//
//	>= 85      Mastery / Low
//	70 - 84.99 Proficient / Low
//	50 - 69.99 Developing / Medium
//	<  50      Critical / High
func Classify(t Tally) Classification {
	var pct float64
	if t.Total > 0 {
		pct = 100 * float64(t.Correct) / float64(t.Total)
	}
	c := Classification{MasteryPercentage: pct}
	switch {
	case pct >= 85:
		c.Status, c.Risk = StatusMastery, RiskLow
	case pct >= 70:
		c.Status, c.Risk = StatusProficient, RiskLow
	case pct >= 50:
		c.Status, c.Risk = StatusDeveloping, RiskMedium
	default:
		c.Status, c.Risk = StatusCritical, RiskHigh
	}
	return c
}

// Submission-count thresholds above which the pass-probability heuristic
// grants its bonus.
const (
	subjectBonusThreshold       = 3
	comprehensiveBonusThreshold = 5
)

// PassProbability estimates the chance the student passes, as avg score
// over 100 nudged up by 0.05 once the history is longer than the bonus
// threshold, capped at 1.0. This is an explicit, reproducible heuristic,
// not a calibrated statistical model; treat the output accordingly.
func PassProbability(avgScore float64, submissionCount, bonusThreshold int) float64 {
	p := avgScore / 100
	if submissionCount > bonusThreshold {
		p += 0.05
	}
	if p > 1.0 {
		p = 1.0
	}
	if p < 0 {
		p = 0
	}
	return p
}
