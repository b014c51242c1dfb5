package scoring

import (
	"math"

	"factory-kpi/app/models"
)

// MonthTotal is one worker's aggregated month of approved entries.
type MonthTotal struct {
	Total      int     `json:"total_score"`
	Violations int     `json:"violations"`
	Penalized  float64 `json:"penalized_score"`
	EntryCount int     `json:"entry_count"`
}

// MonthlyPenalty applies the violation discount curve to a monthly total:
// 0 violations -> no penalty, 1-2 -> x0.95, 3 or more -> x0.80.
// Rounded to two decimals.
func MonthlyPenalty(total float64, violations int) float64 {
	factor := 1.0
	switch {
	case violations >= 3:
		factor = 0.8
	case violations >= 1:
		factor = 0.95
	}
	return math.Round(total*factor*100) / 100
}

// AggregateMonth sums the stored day scores and violation counts of one
// worker's approved entries and applies the monthly penalty. Entries that
// are not approved are ignored. Pure; re-running over the same rows yields
// the same totals.
func AggregateMonth(entries []*models.KPIEntry) MonthTotal {
	var t MonthTotal
	for _, e := range entries {
		if e.Status != models.StatusApproved {
			continue
		}
		t.Total += e.DayScore
		t.Violations += e.Violations
		t.EntryCount++
	}
	t.Penalized = MonthlyPenalty(float64(t.Total), t.Violations)
	return t
}
