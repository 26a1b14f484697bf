package recommend

import (
	"sort"

	"github.com/abhisek/examiz/internal/curriculum"
)

const (
	// MasteryCeiling is the mastery percentage at or above which a
	// competency is considered remediated and excluded from
	// recommendations.
	MasteryCeiling = 70.0

	// BaseStudyMinutes is the unscaled study-time estimate per topic.
	BaseStudyMinutes = 60

	// MaxRecommendations caps the ranked list.
	MaxRecommendations = 10
)

// Weakness is one under-mastered competency, as scored by the analytics
// pass.
type Weakness struct {
	CompetencyID      string
	MasteryPercentage float64
}

// Recommendation points the student at one remedial topic.
type Recommendation struct {
	TopicID            string `json:"topic_id"`
	TopicName          string `json:"topic_name"`
	CompetencyCode     string `json:"competency_code"`
	Priority           int    `json:"priority"`
	EstimatedStudyTime int    `json:"estimated_study_time"`
}

// Set is a ranked recommendation list, strongest priority first, at most
// MaxRecommendations entries.
type Set []Recommendation

// Rank cross-references weak competencies against the curriculum tree and
// returns the ranked remedial topics. Only competencies below the mastery
// ceiling whose owning topic carries instructional content are eligible;
// everything else is silently excluded. priority = 100 - mastery, and the
// study-time estimate is BaseStudyMinutes scaled by the caller's pace
// multiplier.
func Rank(weaknesses []Weakness, tree *curriculum.Tree, paceMultiplier float64) Set {
	if paceMultiplier <= 0 {
		paceMultiplier = 1.0
	}

	var out Set
	seenTopics := make(map[string]bool)
	for _, w := range weaknesses {
		if w.MasteryPercentage >= MasteryCeiling {
			continue
		}
		topic, ok := tree.TopicForCompetency(w.CompetencyID)
		if !ok || !topic.HasContent() {
			continue
		}
		if seenTopics[topic.ID] {
			continue
		}
		seenTopics[topic.ID] = true
		out = append(out, Recommendation{
			TopicID:            topic.ID,
			TopicName:          topic.Name,
			CompetencyCode:     tree.CompetencyCode(w.CompetencyID),
			Priority:           int(100 - w.MasteryPercentage),
			EstimatedStudyTime: int(float64(BaseStudyMinutes) * paceMultiplier),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}
