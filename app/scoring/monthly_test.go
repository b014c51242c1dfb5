package scoring

import (
	"reflect"
	"testing"

	"factory-kpi/app/models"
)

func TestMonthlyPenaltySteps(t *testing.T) {
	cases := []struct {
		total      float64
		violations int
		want       float64
	}{
		{100, 0, 100.00},
		{100, 1, 95.00},
		{100, 2, 95.00},
		{100, 3, 80.00},
		{100, 7, 80.00},
		{33, 2, 31.35},
		{0, 3, 0},
	}
	for _, c := range cases {
		if got := MonthlyPenalty(c.total, c.violations); got != c.want {
			t.Fatalf("MonthlyPenalty(%v,%d) = %v, want %v", c.total, c.violations, got, c.want)
		}
	}
}

func TestAggregateMonthSkipsUnapproved(t *testing.T) {
	entries := []*models.KPIEntry{
		{Status: models.StatusApproved, DayScore: 14, Violations: 0},
		{Status: models.StatusApproved, DayScore: 12, Violations: 1},
		{Status: models.StatusPending, DayScore: 15, Violations: 0},
		{Status: models.StatusRejected, DayScore: 15, Violations: 3},
	}
	got := AggregateMonth(entries)
	if got.Total != 26 || got.Violations != 1 || got.EntryCount != 2 {
		t.Fatalf("aggregate = %+v, want total 26, violations 1, count 2", got)
	}
	if got.Penalized != 24.70 {
		t.Fatalf("penalized = %v, want 24.70", got.Penalized)
	}
}

func TestAggregateMonthIdempotent(t *testing.T) {
	entries := []*models.KPIEntry{
		{Status: models.StatusApproved, DayScore: 13, Violations: 2},
		{Status: models.StatusApproved, DayScore: 15, Violations: 0},
	}
	first := AggregateMonth(entries)
	second := AggregateMonth(entries)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation not idempotent: %+v vs %+v", first, second)
	}
}
