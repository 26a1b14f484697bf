package recommend

import (
	"fmt"
	"testing"

	"github.com/abhisek/examiz/internal/curriculum"
)

func testTree() *curriculum.Tree {
	var topics []curriculum.Topic
	for i := 1; i <= 15; i++ {
		topics = append(topics, curriculum.Topic{
			ID:      fmt.Sprintf("T%d", i),
			Name:    fmt.Sprintf("Topic %d", i),
			Content: "study material",
			Competencies: []curriculum.Competency{
				{ID: fmt.Sprintf("C%d", i), Code: fmt.Sprintf("SUB-%d", i)},
			},
		})
	}
	// T15 has no instructional content.
	topics[14].Content = ""
	return curriculum.NewTree([]curriculum.Subject{{ID: "S1", Name: "Subject", Topics: topics}})
}

func TestRank_PriorityAndOrder(t *testing.T) {
	tree := testTree()
	weaknesses := []Weakness{
		{CompetencyID: "C1", MasteryPercentage: 60},
		{CompetencyID: "C2", MasteryPercentage: 20},
		{CompetencyID: "C3", MasteryPercentage: 45},
	}

	set := Rank(weaknesses, tree, 1.0)
	if len(set) != 3 {
		t.Fatalf("Rank() returned %d recommendations, want 3", len(set))
	}
	for i := 1; i < len(set); i++ {
		if set[i].Priority > set[i-1].Priority {
			t.Errorf("recommendations not sorted descending: %v", set)
		}
	}
	if set[0].TopicID != "T2" || set[0].Priority != 80 {
		t.Errorf("top recommendation = %+v, want T2 with priority 80", set[0])
	}
}

func TestRank_ExcludesMasteredAndContentless(t *testing.T) {
	tree := testTree()
	weaknesses := []Weakness{
		{CompetencyID: "C1", MasteryPercentage: 70},  // at ceiling: excluded
		{CompetencyID: "C2", MasteryPercentage: 85},  // mastered: excluded
		{CompetencyID: "C15", MasteryPercentage: 10}, // topic has no content
		{CompetencyID: "C99", MasteryPercentage: 10}, // unknown competency
		{CompetencyID: "C3", MasteryPercentage: 69.9},
	}

	set := Rank(weaknesses, tree, 1.0)
	if len(set) != 1 {
		t.Fatalf("Rank() returned %d recommendations, want 1: %v", len(set), set)
	}
	if set[0].TopicID != "T3" {
		t.Errorf("recommendation = %+v, want topic T3", set[0])
	}
}

func TestRank_CapAtTen(t *testing.T) {
	tree := testTree()
	var weaknesses []Weakness
	for i := 1; i <= 14; i++ {
		weaknesses = append(weaknesses, Weakness{
			CompetencyID:      fmt.Sprintf("C%d", i),
			MasteryPercentage: float64(i), // all weak, distinct priorities
		})
	}

	set := Rank(weaknesses, tree, 1.0)
	if len(set) != MaxRecommendations {
		t.Fatalf("Rank() returned %d recommendations, want %d", len(set), MaxRecommendations)
	}
	// The cap must keep the highest priorities, i.e. the lowest masteries.
	if set[0].Priority != 99 {
		t.Errorf("top priority = %d, want 99", set[0].Priority)
	}
}

func TestRank_PaceMultiplier(t *testing.T) {
	tree := testTree()
	weaknesses := []Weakness{{CompetencyID: "C1", MasteryPercentage: 30}}

	tests := []struct {
		multiplier float64
		want       int
	}{
		{0.7, 42},
		{1.3, 78},
		{1.0, 60},
		{0, 60}, // unset multiplier falls back to neutral
	}
	for _, tt := range tests {
		set := Rank(weaknesses, tree, tt.multiplier)
		if set[0].EstimatedStudyTime != tt.want {
			t.Errorf("multiplier %g: study time = %d, want %d", tt.multiplier, set[0].EstimatedStudyTime, tt.want)
		}
	}
}

func TestRank_DeduplicatesTopics(t *testing.T) {
	tree := curriculum.NewTree([]curriculum.Subject{{
		ID: "S1",
		Topics: []curriculum.Topic{{
			ID:      "T1",
			Name:    "Shared topic",
			Content: "material",
			Competencies: []curriculum.Competency{
				{ID: "C1", Code: "X-1"},
				{ID: "C2", Code: "X-2"},
			},
		}},
	}})
	weaknesses := []Weakness{
		{CompetencyID: "C1", MasteryPercentage: 10},
		{CompetencyID: "C2", MasteryPercentage: 20},
	}

	set := Rank(weaknesses, tree, 1.0)
	if len(set) != 1 {
		t.Errorf("Rank() returned %d recommendations for one topic, want 1", len(set))
	}
}
