package analytics

import (
	"sort"

	"github.com/abhisek/examiz/internal/bank"
	"github.com/abhisek/examiz/internal/recommend"
)

// CompetencyDiagnostic is one competency's mastery result.
type CompetencyDiagnostic struct {
	CompetencyID      string  `json:"competency_id"`
	Correct           int     `json:"correct"`
	Total             int     `json:"total"`
	MasteryPercentage float64 `json:"mastery_percentage"`
	Status            Status  `json:"status"`
	Risk              Risk    `json:"risk"`
}

// WeaknessReport lists every assessed competency sorted ascending by
// mastery, worst first. Ephemeral: regenerated on demand.
type WeaknessReport []CompetencyDiagnostic

// BuildWeaknessReport classifies each competency tally and orders the
// result worst-first. Ties break on competency id so the order is
// deterministic.
func BuildWeaknessReport(byCompetency map[string]Tally) WeaknessReport {
	report := make(WeaknessReport, 0, len(byCompetency))
	for id, tally := range byCompetency {
		c := Classify(tally)
		report = append(report, CompetencyDiagnostic{
			CompetencyID:      id,
			Correct:           tally.Correct,
			Total:             tally.Total,
			MasteryPercentage: c.MasteryPercentage,
			Status:            c.Status,
			Risk:              c.Risk,
		})
	}
	sort.Slice(report, func(i, j int) bool {
		if report[i].MasteryPercentage != report[j].MasteryPercentage {
			return report[i].MasteryPercentage < report[j].MasteryPercentage
		}
		return report[i].CompetencyID < report[j].CompetencyID
	})
	return report
}

// Weaknesses converts the report into the ranker's input.
func (r WeaknessReport) Weaknesses() []recommend.Weakness {
	out := make([]recommend.Weakness, len(r))
	for i, d := range r {
		out[i] = recommend.Weakness{
			CompetencyID:      d.CompetencyID,
			MasteryPercentage: d.MasteryPercentage,
		}
	}
	return out
}

// BloomDiagnostic is the mastery result for one cognitive level.
type BloomDiagnostic struct {
	Level             bank.CognitiveLevel `json:"level"`
	Correct           int                 `json:"correct"`
	Total             int                 `json:"total"`
	MasteryPercentage float64             `json:"mastery_percentage"`
}

// BuildBloomBreakdown orders the per-level tallies in Bloom order,
// omitting levels the student has never been assessed on.
func BuildBloomBreakdown(byLevel map[bank.CognitiveLevel]Tally) []BloomDiagnostic {
	var out []BloomDiagnostic
	for _, level := range bank.AllLevels() {
		tally, ok := byLevel[level]
		if !ok {
			continue
		}
		out = append(out, BloomDiagnostic{
			Level:             level,
			Correct:           tally.Correct,
			Total:             tally.Total,
			MasteryPercentage: Classify(tally).MasteryPercentage,
		})
	}
	return out
}

// DiagnosticReport is the per-student, per-subject diagnostic output.
type DiagnosticReport struct {
	UserID          string           `json:"user_id"`
	SubjectID       string           `json:"subject_id"`
	SubmissionCount int              `json:"submission_count"`
	AverageScore    float64          `json:"average_score"`
	PassProbability float64          `json:"pass_probability"`
	Pace            Pace             `json:"pace"`
	Competencies    WeaknessReport   `json:"competencies"`
	Blooms          []BloomDiagnostic `json:"blooms"`
	Recommendations recommend.Set    `json:"recommendations"`
}

// ComprehensiveReport covers every subject the student has submissions in.
type ComprehensiveReport struct {
	UserID          string             `json:"user_id"`
	Subjects        []DiagnosticReport `json:"subjects"`
	SubmissionCount int                `json:"submission_count"`
	AverageScore    float64            `json:"average_score"`
	PassProbability float64            `json:"pass_probability"`
	Prediction      *Prediction        `json:"prediction,omitempty"`
}
