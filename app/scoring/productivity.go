package scoring

import (
	"math"
	"sort"
	"strconv"

	"factory-kpi/app/models"
)

// ProductivityScore returns the score of the active rule with the greatest
// threshold <= metric. Rules are scanned in descending threshold order;
// insertion order breaks ties. When no threshold qualifies the section's
// fallback policy decides: zero, or the lowest band's score.
func ProductivityScore(metric float64, rules []*models.ScoringRule, fallback models.FallbackPolicy) int {
	if math.IsNaN(metric) || metric < 0 {
		metric = 0
	}

	active := make([]*models.ScoringRule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	if len(active) == 0 {
		return 0
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Threshold > active[j].Threshold
	})

	for _, r := range active {
		if r.Threshold <= metric {
			return r.Score
		}
	}

	if fallback == models.FallbackLowest {
		return active[len(active)-1].Score
	}
	return 0
}

// ParseMetric converts a raw form value to a metric. Non-numeric input is
// treated as zero rather than rejected.
func ParseMetric(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
