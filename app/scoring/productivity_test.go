package scoring

import (
	"math"
	"testing"

	"factory-kpi/app/models"
)

func ruleTable(pairs map[float64]int) []*models.ScoringRule {
	rules := make([]*models.ScoringRule, 0, len(pairs))
	for threshold, score := range pairs {
		rules = append(rules, &models.ScoringRule{Threshold: threshold, Score: score, IsActive: true})
	}
	return rules
}

func TestProductivityScoreStandardTable(t *testing.T) {
	rules := ruleTable(map[float64]int{112: 10, 108: 9, 104: 8, 100: 7, 98: 6, 96: 4, 94: 2, 92: 0})

	cases := []struct {
		metric float64
		want   int
	}{
		{120, 10},
		{112, 10},
		{111.9, 9},
		{100, 7},
		{99, 6},
		{92, 0},
	}
	for _, c := range cases {
		if got := ProductivityScore(c.metric, rules, models.FallbackZero); got != c.want {
			t.Fatalf("P(%v) = %d, want %d", c.metric, got, c.want)
		}
	}
}

func TestProductivityScoreFallbackZero(t *testing.T) {
	rules := ruleTable(map[float64]int{112: 10, 92: 1})
	if got := ProductivityScore(91, rules, models.FallbackZero); got != 0 {
		t.Fatalf("P(91) with zero fallback = %d, want 0", got)
	}
}

func TestProductivityScoreFallbackLowest(t *testing.T) {
	rules := ruleTable(map[float64]int{112: 10, 92: 1})
	if got := ProductivityScore(91, rules, models.FallbackLowest); got != 1 {
		t.Fatalf("P(91) with lowest fallback = %d, want 1", got)
	}
}

func TestProductivityScoreSkipsInactiveRules(t *testing.T) {
	rules := []*models.ScoringRule{
		{Threshold: 100, Score: 9, IsActive: false},
		{Threshold: 90, Score: 5, IsActive: true},
	}
	if got := ProductivityScore(105, rules, models.FallbackZero); got != 5 {
		t.Fatalf("inactive rule selected: got %d, want 5", got)
	}
}

func TestProductivityScoreDuplicateThresholdFirstWins(t *testing.T) {
	rules := []*models.ScoringRule{
		{Threshold: 100, Score: 7, IsActive: true},
		{Threshold: 100, Score: 3, IsActive: true},
	}
	if got := ProductivityScore(100, rules, models.FallbackZero); got != 7 {
		t.Fatalf("duplicate threshold: got %d, want first rule's 7", got)
	}
}

func TestProductivityScoreDegenerateInputs(t *testing.T) {
	rules := ruleTable(map[float64]int{0: 2, 50: 5})
	if got := ProductivityScore(math.NaN(), rules, models.FallbackZero); got != 2 {
		t.Fatalf("NaN metric = %d, want 2 (coerced to zero, matches threshold 0)", got)
	}
	if got := ProductivityScore(-10, rules, models.FallbackZero); got != 2 {
		t.Fatalf("negative metric = %d, want 2", got)
	}
	if got := ProductivityScore(80, nil, models.FallbackLowest); got != 0 {
		t.Fatalf("empty table = %d, want 0", got)
	}
}

func TestParseMetric(t *testing.T) {
	if got := ParseMetric("104.5"); got != 104.5 {
		t.Fatalf("ParseMetric(104.5) = %v", got)
	}
	if got := ParseMetric("abc"); got != 0 {
		t.Fatalf("non-numeric metric = %v, want 0", got)
	}
	if got := ParseMetric("-3"); got != 0 {
		t.Fatalf("negative metric = %v, want 0", got)
	}
}
