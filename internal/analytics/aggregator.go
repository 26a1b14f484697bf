package analytics

import "github.com/abhisek/examiz/internal/bank"

// Tally is a raw correct/total count. Ephemeral: recomputed fresh from the
// submission history on every request, never persisted.
type Tally struct {
	Correct int
	Total   int
}

// add records one answer.
func (t *Tally) add(correct bool) {
	t.Total++
	if correct {
		t.Correct++
	}
}

// LevelResolver maps a question id to the cognitive level of the item it
// snapshotted, usually by joining against the originating assessments.
type LevelResolver func(questionID string) (bank.CognitiveLevel, bool)

// Aggregate tabulates correctness per competency and per cognitive level
// across the given submissions.
//
// Answers without a resolvable competency id are skipped for the
// competency tally; the rest of their submission still counts
// (partial-data tolerance). The Bloom tally only includes answers whose
// question resolves through the level resolver.
func Aggregate(subs []Submission, resolve LevelResolver) (map[string]Tally, map[bank.CognitiveLevel]Tally) {
	byCompetency := make(map[string]Tally)
	byLevel := make(map[bank.CognitiveLevel]Tally)

	for _, sub := range subs {
		for _, ans := range sub.Answers {
			if ans.CompetencyID != "" {
				t := byCompetency[ans.CompetencyID]
				t.add(ans.Correct)
				byCompetency[ans.CompetencyID] = t
			}
			if resolve != nil {
				if level, ok := resolve(ans.QuestionID); ok {
					t := byLevel[level]
					t.add(ans.Correct)
					byLevel[level] = t
				}
			}
		}
	}
	return byCompetency, byLevel
}

// AverageScore returns the mean submission score, or 0 for no submissions.
func AverageScore(subs []Submission) float64 {
	if len(subs) == 0 {
		return 0
	}
	var sum float64
	for _, s := range subs {
		sum += s.Score
	}
	return sum / float64(len(subs))
}
