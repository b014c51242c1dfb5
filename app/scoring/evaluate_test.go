package scoring

import (
	"testing"

	"factory-kpi/app/models"
)

func TestEvaluateStandardSection(t *testing.T) {
	section := &models.Section{Kind: models.KindStandard, Fallback: models.FallbackZero}
	rules := ruleTable(map[float64]int{112: 10, 100: 7, 92: 0})

	res := Evaluate(section, rules, 113, 0, models.ComplianceNone)
	if res.PScore != 10 || res.QScore != 10 {
		t.Fatalf("components = P%d Q%d, want P10 Q10", res.PScore, res.QScore)
	}
	if res.DayScore != 15 || res.Overflow != 5 {
		t.Fatalf("day = (%d,%d), want (15,5)", res.DayScore, res.Overflow)
	}
	if res.CScore != 0 || res.Violations != 0 {
		t.Fatalf("standard section: C=%d violations=%d, want 0/0", res.CScore, res.Violations)
	}
}

func TestEvaluateHybridSection(t *testing.T) {
	section := &models.Section{Kind: models.KindHybrid, Fallback: models.FallbackZero}
	rules := ruleTable(map[float64]int{110: 7, 100: 5, 90: 3})

	res := Evaluate(section, rules, 105, 1, "UNLOGGED_STOP")
	if res.PScore != 5 {
		t.Fatalf("P = %d, want 5", res.PScore)
	}
	if res.QScore != 4 {
		t.Fatalf("Q = %d, want 4 (5-point scale)", res.QScore)
	}
	if res.CScore != 1 {
		t.Fatalf("C = %d, want 1 (major severity)", res.CScore)
	}
	if res.DayScore != 10 || res.Overflow != 0 {
		t.Fatalf("day = (%d,%d), want (10,0)", res.DayScore, res.Overflow)
	}
	if res.Violations != 2 {
		t.Fatalf("violations = %d, want 2 (severity weight)", res.Violations)
	}
}

func TestEvaluateMoldingLowestFallback(t *testing.T) {
	section := &models.Section{Kind: models.KindMolding, Fallback: models.FallbackLowest}
	rules := ruleTable(map[float64]int{60: 5, 45: 3, 30: 1})

	res := Evaluate(section, rules, 10, 6, "MISSING_PPE")
	if res.PScore != 1 {
		t.Fatalf("P below all thresholds = %d, want lowest band 1", res.PScore)
	}
	if res.QScore != 0 {
		t.Fatalf("Q(6) on 5-point scale = %d, want 0", res.QScore)
	}
	if res.Violations != 1 {
		t.Fatalf("molding violation weight = %d, want 1", res.Violations)
	}
}
