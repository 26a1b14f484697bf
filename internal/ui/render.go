// Package ui renders diagnostic and generation output for the CLI.
package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/examiz/internal/analytics"
	"github.com/abhisek/examiz/internal/generator"
	"github.com/abhisek/examiz/internal/ingest"
)

// Color palette, kept close to the default terminal contrast.
var (
	accent = lipgloss.Color("#8B5CF6")
	good   = lipgloss.Color("#22C55E")
	warn   = lipgloss.Color("#F97316")
	bad    = lipgloss.Color("#F43F5E")
	dim    = lipgloss.Color("#94A3B8")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	goodStyle   = lipgloss.NewStyle().Foreground(good)
	warnStyle   = lipgloss.NewStyle().Foreground(warn)
	badStyle    = lipgloss.NewStyle().Foreground(bad)
)

func riskStyle(r analytics.Risk) lipgloss.Style {
	switch r {
	case analytics.RiskHigh:
		return badStyle
	case analytics.RiskMedium:
		return warnStyle
	default:
		return goodStyle
	}
}

// RenderDiagnostic formats a per-subject diagnostic report.
func RenderDiagnostic(r *analytics.DiagnosticReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Diagnostic — %s / %s", r.UserID, r.SubjectID)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"%d submissions · avg %.1f%% · pass probability %.2f · pace %s",
		r.SubmissionCount, r.AverageScore, r.PassProbability, r.Pace)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Competency mastery (worst first)"))
	b.WriteString("\n")
	for _, c := range r.Competencies {
		line := fmt.Sprintf("  %-16s %6.1f%%  %-10s  %d/%d", c.CompetencyID, c.MasteryPercentage, c.Status, c.Correct, c.Total)
		b.WriteString(riskStyle(c.Risk).Render(line))
		b.WriteString("\n")
	}

	if len(r.Blooms) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("By cognitive level"))
		b.WriteString("\n")
		for _, bl := range r.Blooms {
			b.WriteString(fmt.Sprintf("  %-14s %6.1f%%  %d/%d\n", bl.Level, bl.MasteryPercentage, bl.Correct, bl.Total))
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Recommended study topics"))
	b.WriteString("\n")
	if len(r.Recommendations) == 0 {
		b.WriteString(dimStyle.Render("  nothing to remediate"))
		b.WriteString("\n")
	}
	for i, rec := range r.Recommendations {
		b.WriteString(fmt.Sprintf("  %2d. %s (%s) — priority %d, ~%d min\n",
			i+1, rec.TopicName, rec.CompetencyCode, rec.Priority, rec.EstimatedStudyTime))
	}

	return b.String()
}

// RenderComprehensive formats a cross-subject report: overall stats, an
// optional model prediction, then each subject's diagnostic in full.
func RenderComprehensive(r *analytics.ComprehensiveReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Comprehensive report — %s", r.UserID)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"%d subjects · %d submissions · avg %.1f%% · pass probability %.2f",
		len(r.Subjects), r.SubmissionCount, r.AverageScore, r.PassProbability)))
	b.WriteString("\n")

	if r.Prediction != nil {
		b.WriteString(fmt.Sprintf("  model: %s (confidence %.2f)\n", r.Prediction.Label, r.Prediction.Confidence))
	}

	for i := range r.Subjects {
		b.WriteString("\n")
		b.WriteString(RenderDiagnostic(&r.Subjects[i]))
	}
	return b.String()
}

// RenderGeneration formats a generation summary.
func RenderGeneration(a *generator.GeneratedAssessment) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Generated %q (%s)", a.Title, a.Type)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  id:       %s\n", a.ID))
	b.WriteString(fmt.Sprintf("  subject:  %s\n", a.SubjectID))

	counts := make(map[string]int)
	for _, it := range a.Items {
		counts[string(it.Difficulty)]++
	}
	b.WriteString(fmt.Sprintf("  items:    %d (easy %d / moderate %d / difficult %d)\n",
		a.TotalItems, counts["easy"], counts["moderate"], counts["difficult"]))
	return b.String()
}

// RenderIngest formats a bulk import report.
func RenderIngest(r *ingest.Report) string {
	var b strings.Builder
	accepted := 0
	for _, res := range r.Results {
		if res.OK {
			accepted++
			b.WriteString(goodStyle.Render(fmt.Sprintf("  ok    %s", res.ItemID)))
		} else {
			b.WriteString(badStyle.Render(fmt.Sprintf("  fail  %s: %s", res.ItemID, res.Reason)))
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d items accepted", accepted, len(r.Results))))
	b.WriteString("\n")
	return b.String()
}
